package ecg

import "sort"

// DefaultProfileKey is the canonical fallback rhythm. Lookup never fails:
// an unknown key silently resolves to this profile so a display consumer is
// never left without a renderable rhythm.
const DefaultProfileKey ProfileKey = "normal_sinus_rhythm"

// wenckebachProgression is the canonical PR progression: three conducted
// beats with lengthening PR, then one non-conducted beat.
var wenckebachProgression = []float64{200, 260, 320, 0}

// profiles is the complete catalog: the 54 arrhythmias of the source
// enumeration plus the normal-sinus baseline used as fallback.
// Values follow the full 54-entry parameter table rather than the reduced
// "simple" set where the two disagree.
var profiles = []RhythmProfile{
	{
		Key: DefaultProfileKey, Name: "Normal Sinus Rhythm", Category: "normal",
		Mechanism: "normal automaticity", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},

	// Supraventricular bradyarrhythmias.
	{
		Key: "sinus_bradycardia", Name: "Sinus Bradycardia", Category: "supraventricular_brady",
		Mechanism: "decreased automaticity", Urgency: "low",
		RateMin: 35, RateMax: 59,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "sick_sinus_syndrome", Name: "Sick Sinus Syndrome", Category: "supraventricular_brady",
		Mechanism: "sinus node dysfunction", Urgency: "medium",
		RateMin: 30, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Irregular,
		Pattern: Pattern{Kind: PatternMobitz, DropCycle: 6},
	},
	{
		Key: "av_block_first_degree", Name: "First Degree AV Block", Category: "supraventricular_brady",
		Mechanism: "conduction delay", Urgency: "low",
		RateMin: 50, RateMax: 90,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 280, Regularity: Regular,
	},
	{
		Key: "av_block_2_wenckebach", Name: "Second Degree AV Block Type I (Wenckebach)", Category: "supraventricular_brady",
		Mechanism: "progressive AV nodal block", Urgency: "medium",
		RateMin: 40, RateMax: 80,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 200, Regularity: Irregular,
		Pattern: Pattern{Kind: PatternWenckebach, PRProgression: wenckebachProgression},
	},
	{
		Key: "av_block_2_mobitz", Name: "Second Degree AV Block Type II (Mobitz II)", Category: "supraventricular_brady",
		Mechanism: "infranodal block", Urgency: "high",
		RateMin: 30, RateMax: 70,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 120, QRSAmplitude: 1.0, WideQRS: true,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 180, Regularity: Irregular,
		Pattern: Pattern{Kind: PatternMobitz, DropCycle: 4},
	},
	{
		Key: "av_block_complete", Name: "Complete (Third Degree) AV Block", Category: "supraventricular_brady",
		Mechanism: "complete AV dissociation", Urgency: "critical",
		RateMin: 30, RateMax: 45,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 120, QRSAmplitude: 1.2, WideQRS: true,
		TAmplitude: 0.35, TPolarity: 1,
		PRInterval: 0, Regularity: Regular,
	},

	// Supraventricular tachyarrhythmias.
	{
		Key: "sinus_tachycardia", Name: "Sinus Tachycardia", Category: "supraventricular_tachy",
		Mechanism: "increased automaticity", Urgency: "low",
		RateMin: 100, RateMax: 180,
		HasP: true, PAmplitude: 0.18,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 140, Regularity: Regular,
	},
	{
		Key: "atrial_tachycardia", Name: "Atrial Tachycardia", Category: "supraventricular_tachy",
		Mechanism: "atrial automaticity", Urgency: "medium",
		RateMin: 150, RateMax: 250,
		HasP: true, PAmplitude: 0.12,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 140, Regularity: Regular,
	},
	{
		Key: "atrial_flutter", Name: "Atrial Flutter", Category: "supraventricular_tachy",
		Mechanism: "macro-reentry", Urgency: "medium",
		RateMin: 130, RateMax: 150,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 0, Regularity: Regular,
		Baseline: BaselineFlutter, FlutterRate: 300,
	},
	{
		Key: "atrial_fibrillation", Name: "Atrial Fibrillation", Category: "supraventricular_tachy",
		Mechanism: "multiple reentry", Urgency: "medium",
		RateMin: 60, RateMax: 160,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 0, Regularity: Chaotic,
		Baseline: BaselineFibrillatory,
	},
	{
		Key: "avnrt", Name: "AV Nodal Reentrant Tachycardia (AVNRT)", Category: "supraventricular_tachy",
		Mechanism: "AV nodal reentry", Urgency: "medium",
		RateMin: 140, RateMax: 220,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 80, Regularity: Regular,
	},
	{
		Key: "avrt", Name: "AV Reentrant Tachycardia (AVRT)", Category: "supraventricular_tachy",
		Mechanism: "accessory pathway reentry", Urgency: "medium",
		RateMin: 140, RateMax: 250,
		HasP: true, PAmplitude: -0.10, // retrograde P
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 100, Regularity: Regular,
	},
	{
		Key: "wpw_syndrome", Name: "Wolff-Parkinson-White Syndrome", Category: "supraventricular_tachy",
		Mechanism: "pre-excitation", Urgency: "high",
		RateMin: 100, RateMax: 250,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 130, QRSAmplitude: 1.2, WideQRS: true,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 100, Regularity: Regular,
	},
	{
		Key: "psvt", Name: "Paroxysmal Supraventricular Tachycardia (PSVT)", Category: "supraventricular_tachy",
		Mechanism: "reentry", Urgency: "medium",
		RateMin: 150, RateMax: 220,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 0, Regularity: Regular,
	},
	{
		Key: "multifocal_atrial_tachy", Name: "Multifocal Atrial Tachycardia (MAT)", Category: "supraventricular_tachy",
		Mechanism: "multifocal automaticity", Urgency: "medium",
		RateMin: 100, RateMax: 180,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Irregular,
	},
	{
		Key: "focal_atrial_tachy", Name: "Focal Atrial Tachycardia", Category: "supraventricular_tachy",
		Mechanism: "focal automaticity", Urgency: "medium",
		RateMin: 150, RateMax: 250,
		HasP: true, PAmplitude: 0.12,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "intra_atrial_reentry", Name: "Intra-atrial Reentrant Tachycardia", Category: "supraventricular_tachy",
		Mechanism: "intra-atrial reentry", Urgency: "medium",
		RateMin: 130, RateMax: 200,
		HasP: true, PAmplitude: 0.12,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "sinus_node_reentry", Name: "Sinus Node Reentrant Tachycardia", Category: "supraventricular_tachy",
		Mechanism: "sinoatrial reentry", Urgency: "low",
		RateMin: 100, RateMax: 150,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "ectopic_atrial_rhythm", Name: "Ectopic Atrial Rhythm", Category: "supraventricular_tachy",
		Mechanism: "ectopic atrial focus", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.12,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "atypical_atrial_flutter", Name: "Atypical Atrial Flutter", Category: "supraventricular_tachy",
		Mechanism: "macro-reentry", Urgency: "medium",
		RateMin: 120, RateMax: 200,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Baseline: BaselineFlutter, FlutterRate: 250,
	},

	// Other supraventricular.
	{
		Key: "premature_atrial_contraction", Name: "Premature Atrial Contraction (PAC)", Category: "supraventricular_other",
		Mechanism: "atrial ectopic focus", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.12,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternPVC, EctopicPeriod: 6},
	},
	{
		Key: "premature_junctional_contraction", Name: "Premature Junctional Contraction (PJC)", Category: "supraventricular_other",
		Mechanism: "junctional ectopic focus", Urgency: "low",
		RateMin: 60, RateMax: 100,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternPVC, EctopicPeriod: 6},
	},
	{
		Key: "junctional_escape_rhythm", Name: "Junctional Escape Rhythm", Category: "supraventricular_other",
		Mechanism: "junctional escape automaticity", Urgency: "medium",
		RateMin: 40, RateMax: 60,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "junctional_tachycardia", Name: "Junctional Tachycardia", Category: "supraventricular_other",
		Mechanism: "junctional automaticity", Urgency: "medium",
		RateMin: 70, RateMax: 130,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "junctional_ectopic_tachy", Name: "Junctional Ectopic Tachycardia (JET)", Category: "supraventricular_other",
		Mechanism: "junctional automaticity", Urgency: "high",
		RateMin: 120, RateMax: 200,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.25, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "wandering_atrial_pacemaker", Name: "Wandering Atrial Pacemaker", Category: "supraventricular_other",
		Mechanism: "shifting atrial focus", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Irregular,
	},
	{
		Key: "sinus_arrhythmia", Name: "Sinus Arrhythmia", Category: "supraventricular_other",
		Mechanism: "respiratory variation", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Irregular,
	},
	{
		Key: "sinus_pause", Name: "Sinus Pause", Category: "supraventricular_other",
		Mechanism: "transient sinus failure", Urgency: "medium",
		RateMin: 50, RateMax: 80,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternMobitz, DropCycle: 5},
	},
	{
		Key: "sinus_arrest", Name: "Sinus Arrest", Category: "supraventricular_other",
		Mechanism: "sinus node arrest", Urgency: "high",
		RateMin: 30, RateMax: 60,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 100, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternMobitz, DropCycle: 4},
	},
	{
		Key: "sinoatrial_exit_block", Name: "Sinoatrial Exit Block", Category: "supraventricular_other",
		Mechanism: "sinoatrial exit block", Urgency: "medium",
		RateMin: 50, RateMax: 80,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternMobitz, DropCycle: 5},
	},

	// Ventricular.
	{
		Key: "premature_ventricular_contraction", Name: "Premature Ventricular Contraction (PVC)", Category: "ventricular",
		Mechanism: "ventricular ectopic focus", Urgency: "low",
		RateMin: 60, RateMax: 100,
		QRSDuration: 140, QRSAmplitude: 1.8, WideQRS: true,
		TAmplitude: 0.5, TPolarity: -1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternPVC, EctopicPeriod: 6},
	},
	{
		Key: "pvc_bigeminy", Name: "PVC Bigeminy", Category: "ventricular",
		Mechanism: "ventricular ectopic focus", Urgency: "medium",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternBigeminy},
	},
	{
		Key: "pvc_trigeminy", Name: "PVC Trigeminy", Category: "ventricular",
		Mechanism: "ventricular ectopic focus", Urgency: "medium",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternTrigeminy},
	},
	{
		Key: "pvc_couplet", Name: "PVC Couplet", Category: "ventricular",
		Mechanism: "ventricular ectopic focus", Urgency: "medium",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternCouplet},
	},
	{
		Key: "pvc_triplet", Name: "PVC Triplet (NSVT)", Category: "ventricular",
		Mechanism: "ventricular ectopic focus", Urgency: "high",
		RateMin: 140, RateMax: 200,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternTriplet},
	},
	{
		Key: "accelerated_idioventricular_rhythm", Name: "Accelerated Idioventricular Rhythm (AIVR)", Category: "ventricular",
		Mechanism: "enhanced ventricular automaticity", Urgency: "medium",
		RateMin: 40, RateMax: 110,
		QRSDuration: 140, QRSAmplitude: 1.3, WideQRS: true,
		TAmplitude: 0.4, TPolarity: -1,
		PRInterval: 0, Regularity: Regular,
	},
	{
		Key: "ventricular_escape_rhythm", Name: "Ventricular Escape Rhythm", Category: "ventricular",
		Mechanism: "ventricular escape automaticity", Urgency: "high",
		RateMin: 20, RateMax: 40,
		QRSDuration: 160, QRSAmplitude: 1.5, WideQRS: true,
		TAmplitude: 0.5, TPolarity: -1,
		PRInterval: 0, Regularity: Regular,
	},
	{
		Key: "ventricular_tachycardia_monomorphic", Name: "Monomorphic Ventricular Tachycardia", Category: "ventricular",
		Mechanism: "ventricular reentry", Urgency: "critical",
		RateMin: 140, RateMax: 220,
		QRSDuration: 140, QRSAmplitude: 1.5, WideQRS: true,
		TAmplitude: 0.4, TPolarity: -1,
		PRInterval: 0, Regularity: Regular,
	},
	{
		Key: "ventricular_tachycardia_polymorphic", Name: "Polymorphic Ventricular Tachycardia", Category: "ventricular",
		Mechanism: "ventricular reentry", Urgency: "critical",
		RateMin: 100, RateMax: 250,
		QRSDuration: 140, QRSAmplitude: 1.5, WideQRS: true,
		PRInterval: 0, Regularity: Irregular,
	},
	{
		Key: "ventricular_tachycardia_sustained", Name: "Sustained Ventricular Tachycardia", Category: "ventricular",
		Mechanism: "ventricular reentry", Urgency: "critical",
		RateMin: 100, RateMax: 250,
		QRSDuration: 140, QRSAmplitude: 1.5, WideQRS: true,
		TAmplitude: 0.4, TPolarity: -1,
		PRInterval: 0, Regularity: Regular,
	},
	{
		Key: "ventricular_tachycardia_nonsustained", Name: "Non-Sustained Ventricular Tachycardia (NSVT)", Category: "ventricular",
		Mechanism: "ventricular reentry", Urgency: "high",
		RateMin: 100, RateMax: 250,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternTriplet},
	},
	{
		Key: "torsades_de_pointes", Name: "Torsades de Pointes", Category: "ventricular",
		Mechanism: "triggered activity", Urgency: "critical",
		RateMin: 200, RateMax: 300,
		QRSDuration: 150, QRSAmplitude: 1.2, WideQRS: true,
		PRInterval: 0, Regularity: Irregular,
		Baseline: BaselineTorsades,
	},
	{
		Key: "ventricular_fibrillation_coarse", Name: "Ventricular Fibrillation (Coarse)", Category: "ventricular",
		Mechanism: "chaotic reentry", Urgency: "critical",
		RateMin: 300, RateMax: 500,
		QRSAmplitude: 0.8,
		PRInterval: 0, Regularity: Chaotic,
		Baseline: BaselineVFCoarse,
	},
	{
		Key: "ventricular_fibrillation_fine", Name: "Ventricular Fibrillation (Fine)", Category: "ventricular",
		Mechanism: "chaotic reentry", Urgency: "critical",
		RateMin: 300, RateMax: 500,
		QRSAmplitude: 0.3,
		PRInterval: 0, Regularity: Chaotic,
		Baseline: BaselineVFFine,
	},
	{
		Key: "asystole", Name: "Asystole", Category: "ventricular",
		Mechanism: "no electrical activity", Urgency: "critical",
		RateMin: 0, RateMax: 0,
		PRInterval: 0, Regularity: Regular,
	},
	{
		Key: "idioventricular_rhythm", Name: "Idioventricular Rhythm", Category: "ventricular",
		Mechanism: "ventricular escape automaticity", Urgency: "high",
		RateMin: 20, RateMax: 40,
		QRSDuration: 160, QRSAmplitude: 1.5, WideQRS: true,
		TAmplitude: 0.5, TPolarity: -1,
		PRInterval: 0, Regularity: Regular,
	},

	// Special phenomena.
	{
		Key: "parasystole", Name: "Parasystole", Category: "special",
		Mechanism: "protected ectopic focus", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternPVC, EctopicPeriod: 5},
	},
	{
		Key: "fusion_beat", Name: "Fusion Beat", Category: "special",
		Mechanism: "simultaneous activation", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 100, QRSAmplitude: 1.2,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "capture_beat", Name: "Capture Beat", Category: "special",
		Mechanism: "intermittent conduction", Urgency: "medium",
		RateMin: 140, RateMax: 200,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "r_on_t_phenomenon", Name: "R-on-T Phenomenon", Category: "special",
		Mechanism: "ectopy in vulnerable period", Urgency: "high",
		RateMin: 60, RateMax: 100,
		QRSDuration: 140, QRSAmplitude: 1.8, WideQRS: true,
		TAmplitude: 0.5, TPolarity: -1,
		PRInterval: 160, Regularity: Regular,
		Pattern: Pattern{Kind: PatternPVC, EctopicPeriod: 4},
	},
	{
		Key: "ashman_phenomenon", Name: "Ashman Phenomenon", Category: "special",
		Mechanism: "aberrant conduction", Urgency: "low",
		RateMin: 80, RateMax: 140,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 120, QRSAmplitude: 1.2,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Irregular,
		Pattern: Pattern{Kind: PatternPVC, EctopicPeriod: 8},
	},
	{
		Key: "concealed_conduction", Name: "Concealed Conduction", Category: "special",
		Mechanism: "hidden partial conduction", Urgency: "low",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 80, QRSAmplitude: 1.0,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 160, Regularity: Regular,
	},
	{
		Key: "av_dissociation", Name: "AV Dissociation", Category: "special",
		Mechanism: "independent pacemakers", Urgency: "medium",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 100, QRSAmplitude: 1.2,
		TAmplitude: 0.3, TPolarity: 1,
		PRInterval: 0, Regularity: Regular,
	},
	{
		Key: "brugada_pattern", Name: "Brugada Pattern", Category: "special",
		Mechanism: "sodium channelopathy", Urgency: "high",
		RateMin: 60, RateMax: 100,
		HasP: true, PAmplitude: 0.15,
		QRSDuration: 100, QRSAmplitude: 1.0,
		TAmplitude: 0.2, TPolarity: -1,
		PRInterval: 160, Regularity: Regular,
	},
}

var catalog = func() map[ProfileKey]RhythmProfile {
	m := make(map[ProfileKey]RhythmProfile, len(profiles))
	for _, p := range profiles {
		m[p.Key] = p
	}
	return m
}()

// Lookup returns the profile for key, falling back to the normal-sinus
// default when the key is unknown. The fallback is deliberate recovery,
// not an error: the consumer must always have a renderable rhythm.
func Lookup(key ProfileKey) RhythmProfile {
	if p, ok := catalog[key]; ok {
		return p
	}
	return catalog[DefaultProfileKey]
}

// Keys returns all catalog keys in sorted order.
func Keys() []ProfileKey {
	keys := make([]ProfileKey, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Profiles returns all catalog entries ordered by key.
func Profiles() []RhythmProfile {
	out := make([]RhythmProfile, 0, len(catalog))
	for _, k := range Keys() {
		out = append(out, catalog[k])
	}
	return out
}
