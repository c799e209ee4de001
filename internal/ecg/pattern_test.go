package ecg

import (
	"testing"
)

func TestResolve_no_pattern(t *testing.T) {
	p := Lookup(DefaultProfileKey)
	for i := 0; i < 10; i++ {
		ctx := Resolve(p, i)
		if ctx.Dropped || ctx.Ectopic {
			t.Errorf("beat %d: sinus rhythm should never drop or go ectopic", i)
		}
		if ctx.PR != p.PRInterval {
			t.Errorf("beat %d: PR = %v, want %v", i, ctx.PR, p.PRInterval)
		}
	}
}

func TestResolve_wenckebach_progression(t *testing.T) {
	p := Lookup("av_block_2_wenckebach")

	// Two full cycles: PR lengthens beat over beat, then the fourth beat drops.
	for cycle := 0; cycle < 2; cycle++ {
		base := cycle * 4
		prev := 0.0
		for i := 0; i < 3; i++ {
			ctx := Resolve(p, base+i)
			if ctx.Dropped {
				t.Fatalf("beat %d: conducted beat marked dropped", base+i)
			}
			if ctx.PR <= prev {
				t.Errorf("beat %d: PR %v not strictly increasing (prev %v)", base+i, ctx.PR, prev)
			}
			prev = ctx.PR
		}
		if ctx := Resolve(p, base+3); !ctx.Dropped {
			t.Errorf("beat %d: expected dropped beat", base+3)
		}
	}
}

func TestResolve_mobitz_fixed_pr(t *testing.T) {
	p := Lookup("av_block_2_mobitz")
	cycle := p.Pattern.DropCycle
	if cycle < 2 {
		t.Fatalf("unexpected drop cycle %d", cycle)
	}

	for i := 0; i < 3*cycle; i++ {
		ctx := Resolve(p, i)
		if ctx.PR != p.PRInterval {
			t.Errorf("beat %d: Mobitz PR must stay fixed, got %v", i, ctx.PR)
		}
		wantDrop := i%cycle == cycle-1
		if ctx.Dropped != wantDrop {
			t.Errorf("beat %d: dropped = %v, want %v", i, ctx.Dropped, wantDrop)
		}
	}
}

func TestResolve_bigeminy_alternation(t *testing.T) {
	p := Lookup("pvc_bigeminy")
	for i := 0; i < 12; i++ {
		ctx := Resolve(p, i)
		if want := i%2 == 1; ctx.Ectopic != want {
			t.Errorf("beat %d: ectopic = %v, want %v", i, ctx.Ectopic, want)
		}
	}
}

func TestResolve_trigeminy_every_third(t *testing.T) {
	p := Lookup("pvc_trigeminy")
	for i := 0; i < 12; i++ {
		ctx := Resolve(p, i)
		if want := i%3 == 2; ctx.Ectopic != want {
			t.Errorf("beat %d: ectopic = %v, want %v", i, ctx.Ectopic, want)
		}
	}
}

func TestResolve_isolated_pvc_period(t *testing.T) {
	p := Lookup("premature_ventricular_contraction")
	period := p.Pattern.EctopicPeriod
	if period <= 0 {
		period = DefaultEctopicPeriod
	}
	count := 0
	for i := 0; i < 3*period; i++ {
		if Resolve(p, i).Ectopic {
			count++
			if i%period != period-1 {
				t.Errorf("beat %d: ectopic outside expected slot", i)
			}
		}
	}
	if count != 3 {
		t.Errorf("expected 3 ectopics over 3 periods, got %d", count)
	}
}

func TestResolve_couplet_pairs(t *testing.T) {
	p := Lookup("pvc_couplet")
	for i := 0; i < 15; i++ {
		r := i % 5
		if want := r == 3 || r == 4; Resolve(p, i).Ectopic != want {
			t.Errorf("beat %d: couplet ectopic mismatch", i)
		}
	}
}

func TestResolve_triplet_runs(t *testing.T) {
	p := Lookup("pvc_triplet")
	for i := 0; i < 18; i++ {
		if want := i%6 >= 3; Resolve(p, i).Ectopic != want {
			t.Errorf("beat %d: triplet ectopic mismatch", i)
		}
	}
}

func TestResolve_deterministic(t *testing.T) {
	for _, p := range Profiles() {
		for i := 0; i < 8; i++ {
			a := Resolve(p, i)
			b := Resolve(p, i)
			if a != b {
				t.Errorf("%s beat %d: Resolve not deterministic: %+v vs %+v", p.Key, i, a, b)
			}
		}
	}
}
