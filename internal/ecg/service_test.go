package ecg

import (
	"math/rand"
	"sync"
	"testing"
)

func TestNewService_nil_controller(t *testing.T) {
	svc := NewService(nil)
	if svc == nil {
		t.Fatal("NewService(nil) should not be nil")
	}
	if svc.Metadata().Key != DefaultProfileKey {
		t.Errorf("expected default profile, got %q", svc.Metadata().Key)
	}
}

func TestService_select_returns_metadata(t *testing.T) {
	svc := NewService(NewStreamController(rand.New(rand.NewSource(1))))

	meta := svc.SelectProfile("ventricular_tachycardia_monomorphic")
	if meta.Key != "ventricular_tachycardia_monomorphic" {
		t.Errorf("selected %q", meta.Key)
	}

	meta = svc.SelectProfile("bogus")
	if meta.Key != DefaultProfileKey {
		t.Errorf("fallback metadata %q", meta.Key)
	}
}

func TestService_concurrent_access(t *testing.T) {
	svc := NewService(NewStreamController(rand.New(rand.NewSource(1))))
	svc.SetRunning(true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch n % 4 {
				case 0:
					svc.NextSamples(100)
				case 1:
					svc.SetHeartRate(float64(60 + j))
				case 2:
					svc.Metadata()
				case 3:
					svc.Stats()
				}
			}
		}(i)
	}
	wg.Wait()

	if got := len(svc.NextSamples(10)); got != 10 {
		t.Errorf("expected 10 samples after concurrent churn, got %d", got)
	}
}
