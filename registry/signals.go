package registry

import (
	"math"

	"github.com/JeffJassky/pyhsim/common"
	"github.com/JeffJassky/pyhsim/simcontext"
	"github.com/JeffJassky/pyhsim/units"
)

func ptr(v float64) *float64 { return &v }

// nonNegative clamps a Hill-style activity argument into a sane domain
// before exponentiation, guarding against negative source values reaching
// fractional powers.
func nonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// DefaultSignals returns the catalog of user-visible physiological signals.
// Coefficients are authored so that a source signal/auxiliary living in a
// different unit already has its scale ratio folded in — the engine never
// implicitly converts units.
func DefaultSignals() []SignalDefinition {
	return []SignalDefinition{
		{
			Key: Cortisol, Label: "Cortisol", Unit: units.MicrogramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 3, High: 20}, Tendency: common.TendencyMid,
			Setpoint: cortisolSetpoint, Tau: 45,
			Production: []ProductionTerm{
				{Source: string(CRHPool), Coefficient: 0.015},
				{Source: string(ACTH), Coefficient: 0.004},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceEnzymeDependent, Rate: 0.012, Enzyme: ActivityGR},
				{Kind: ClearanceEnzymeDependent, Rate: 0.004, Enzyme: Activity11BHSD},
			},
			Couplings: []Coupling{
				{Source: string(Melatonin), Effect: Inhibit, Strength: 0.02},
			},
			InitialValue: cortisolSetpoint,
			Min:          ptr(0.5), Max: ptr(60),
		},
		{
			Key: Melatonin, Label: "Melatonin", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 1, High: 60}, Tendency: common.TendencyNone,
			Setpoint: melatoninSetpoint, Tau: 30,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.025},
			},
			Couplings: []Coupling{
				{Source: string(Orexin), Effect: Inhibit, Strength: 0.15},
			},
			InitialValue: melatoninSetpoint,
			Min:          ptr(0), Max: ptr(150),
		},
		{
			Key: Dopamine, Label: "Dopamine", Unit: units.NanoMolar,
			ReferenceRange: units.ReferenceRange{Low: 5, High: 20}, Tendency: common.TendencyMid,
			Setpoint: dopamineSetpoint, Tau: 20,
			Production: []ProductionTerm{
				{Source: string(DopamineVesicles), Coefficient: 0.08},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceEnzymeDependent, Rate: 0.09, Enzyme: ActivityDAT},
				{Kind: ClearanceEnzymeDependent, Rate: 0.015, Enzyme: ActivityMAOA},
			},
			Couplings: []Coupling{
				{Source: string(Cortisol), Effect: Inhibit, Strength: 0.015},
			},
			InitialValue: dopamineSetpoint,
			Min:          ptr(0.5), Max: ptr(120),
		},
		{
			Key: Norepinephrine, Label: "Norepinephrine", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 100, High: 400}, Tendency: common.TendencyNone,
			Setpoint: norepinephrineSetpoint, Tau: 8,
			Production: []ProductionTerm{
				{Source: string(CatecholamineReserve), Coefficient: 0.05},
				{Source: string(Orexin), Coefficient: 0.3},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceEnzymeDependent, Rate: 0.11, Enzyme: ActivityCOMT},
			},
			InitialValue: norepinephrineSetpoint,
			Min:          ptr(20), Max: ptr(4000),
		},
		{
			Key: Epinephrine, Label: "Epinephrine", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 10, High: 100}, Tendency: common.TendencyNone,
			Setpoint: epinephrineSetpoint, Tau: 5,
			Couplings: []Coupling{
				{Source: string(Norepinephrine), Effect: Stimulate, Strength: 0.04},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceEnzymeDependent, Rate: 0.15, Enzyme: ActivityCOMT},
			},
			InitialValue: epinephrineSetpoint,
			Min:          ptr(5), Max: ptr(1500),
		},
		{
			Key: Serotonin, Label: "Serotonin", Unit: units.NanogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 50, High: 200}, Tendency: common.TendencyMid,
			Setpoint: serotoninSetpoint, Tau: 60,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceEnzymeDependent, Rate: 0.02, Enzyme: ActivitySERT},
				{Kind: ClearanceEnzymeDependent, Rate: 0.01, Enzyme: ActivityMAOA},
			},
			InitialValue: serotoninSetpoint,
			Min:          ptr(5), Max: ptr(400),
		},
		{
			Key: Glucose, Label: "Glucose", Unit: units.MilligramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 70, High: 140}, Tendency: common.TendencyMid,
			Setpoint: glucoseSetpoint, Tau: 25,
			Production: []ProductionTerm{
				{Source: string(HepaticGlycogen), Coefficient: 0.01},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceSaturable, Vmax: 2.2, Km: 60,
					Transform: func(x float64, snap Snapshot, ctx simcontext.Context) float64 {
						return snap.Activity(ActivityInsulinR) * (0.4 + 0.6*snap.Value(string(InsulinAction)))
					},
				},
			},
			InitialValue: glucoseSetpoint,
			Min:          ptr(35), Max: ptr(500),
		},
		{
			Key: Insulin, Label: "Insulin", Unit: units.UnitsPerLiter,
			ReferenceRange: units.ReferenceRange{Low: 2, High: 25}, Tendency: common.TendencyMid,
			Setpoint: insulinSetpoint, Tau: 15,
			Production: []ProductionTerm{
				{Source: string(Glucose), Coefficient: 0.0022,
					Transform: func(x float64, snap Snapshot, ctx simcontext.Context) float64 {
						return math.Pow(nonNegative(x-70), 1.3) * snap.Activity(ActivityDPP4)
					},
				},
				{Source: string(BetaCellReserve), Coefficient: 0.02},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.1},
			},
			InitialValue: insulinSetpoint,
			Min:          ptr(1), Max: ptr(300),
		},
		{
			Key: Glucagon, Label: "Glucagon", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 50, High: 150}, Tendency: common.TendencyNone,
			Setpoint: glucagonSetpoint, Tau: 20,
			Couplings: []Coupling{
				{Source: string(Glucose), Effect: Inhibit, Strength: 0.3},
				{Source: string(Insulin), Effect: Inhibit, Strength: 1.5},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.07},
			},
			InitialValue: glucagonSetpoint,
			Min:          ptr(20), Max: ptr(600),
		},
		{
			Key: Testosterone, Label: "Testosterone", Unit: units.NanogramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 15, High: 1000}, Tendency: common.TendencyNone,
			Setpoint: testosteroneSetpoint, Tau: 90,
			InitialValue: testosteroneSetpoint,
			Min:          ptr(5), Max: ptr(1500),
		},
		{
			Key: Estrogen, Label: "Estradiol", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 30, High: 400}, Tendency: common.TendencyNone,
			Setpoint: estrogenSetpoint, Tau: 120,
			InitialValue: estrogenSetpoint,
			Min:          ptr(10), Max: ptr(600),
		},
		{
			Key: Progesterone, Label: "Progesterone", Unit: units.NanogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 0.2, High: 25}, Tendency: common.TendencyNone,
			Setpoint: progesteroneSetpoint, Tau: 120,
			InitialValue: progesteroneSetpoint,
			Min:          ptr(0.1), Max: ptr(40),
		},
		{
			Key: LH, Label: "Luteinizing Hormone", Unit: units.IUPerLiter,
			ReferenceRange: units.ReferenceRange{Low: 1, High: 60}, Tendency: common.TendencyNone,
			Setpoint: lhSetpoint, Tau: 90,
			InitialValue: lhSetpoint,
			Min:          ptr(0.5), Max: ptr(100),
		},
		{
			Key: FSH, Label: "Follicle-Stimulating Hormone", Unit: units.IUPerLiter,
			ReferenceRange: units.ReferenceRange{Low: 1, High: 20}, Tendency: common.TendencyNone,
			Setpoint: fshSetpoint, Tau: 90,
			InitialValue: fshSetpoint,
			Min:          ptr(0.5), Max: ptr(40),
		},
		{
			Key: GrowthHormone, Label: "Growth Hormone", Unit: units.NanogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 0.1, High: 10}, Tendency: common.TendencyNone,
			Setpoint: growthHormoneSetpoint, Tau: 15,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.15},
			},
			InitialValue: growthHormoneSetpoint,
			Min:          ptr(0), Max: ptr(40),
		},
		{
			Key: Ghrelin, Label: "Ghrelin", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 300, High: 1200}, Tendency: common.TendencyNone,
			Setpoint: ghrelinSetpoint, Tau: 40,
			Couplings: []Coupling{
				{Source: string(Glucose), Effect: Inhibit, Strength: 1.2},
			},
			InitialValue: ghrelinSetpoint,
			Min:          ptr(100), Max: ptr(2000),
		},
		{
			Key: Leptin, Label: "Leptin", Unit: units.NanogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 2, High: 20}, Tendency: common.TendencyNone,
			Setpoint: leptinSetpoint, Tau: 240,
			InitialValue: leptinSetpoint,
			Min:          ptr(0.5), Max: ptr(60),
		},
		{
			Key: HeartRate, Label: "Heart Rate", Unit: units.BeatsPerMinute,
			ReferenceRange: units.ReferenceRange{Low: 50, High: 100}, Tendency: common.TendencyMid,
			Setpoint: heartRateSetpoint, Tau: 4,
			Couplings: []Coupling{
				{Source: string(Norepinephrine), Effect: Stimulate, Strength: 0.02},
				{Source: string(Epinephrine), Effect: Stimulate, Strength: 0.05},
			},
			InitialValue: heartRateSetpoint,
			Min:          ptr(35), Max: ptr(220),
		},
		{
			Key: SystolicBP, Label: "Systolic Blood Pressure", Unit: units.MillimetersMercury,
			ReferenceRange: units.ReferenceRange{Low: 100, High: 130}, Tendency: common.TendencyMid,
			Setpoint: systolicBPSetpoint, Tau: 6,
			Couplings: []Coupling{
				{Source: string(Norepinephrine), Effect: Stimulate, Strength: 0.006},
			},
			InitialValue: systolicBPSetpoint,
			Min:          ptr(70), Max: ptr(220),
		},
		{
			Key: BodyTemperature, Label: "Core Body Temperature", Unit: units.DegreesCelsius,
			ReferenceRange: units.ReferenceRange{Low: 36.1, High: 37.5}, Tendency: common.TendencyMid,
			Setpoint: bodyTemperatureSetpoint, Tau: 90,
			InitialValue: bodyTemperatureSetpoint,
			Min:          ptr(34), Max: ptr(41),
		},
		{
			Key: GABA, Label: "GABAergic Tone", Unit: units.IndexUnit,
			ReferenceRange: units.ReferenceRange{Low: 30, High: 80}, Tendency: common.TendencyNone,
			Setpoint: gabaSetpoint, Tau: 30,
			Couplings: []Coupling{
				{Source: string(AdenosinePressure), Effect: Stimulate, Strength: 20},
			},
			InitialValue: gabaSetpoint,
			Min:          ptr(5), Max: ptr(100),
		},
		{
			Key: Glutamate, Label: "Glutamatergic Tone", Unit: units.IndexUnit,
			ReferenceRange: units.ReferenceRange{Low: 40, High: 90}, Tendency: common.TendencyNone,
			Setpoint: glutamateSetpoint, Tau: 30,
			Couplings: []Coupling{
				{Source: string(GABA), Effect: Inhibit, Strength: 0.25},
			},
			InitialValue: glutamateSetpoint,
			Min:          ptr(5), Max: ptr(100),
		},
		{
			Key: Orexin, Label: "Orexin", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 10, High: 60}, Tendency: common.TendencyNone,
			Setpoint: orexinSetpoint, Tau: 20,
			Couplings: []Coupling{
				{Source: string(AdenosinePressure), Effect: Inhibit, Strength: 15},
				{Source: string(GABA), Effect: Inhibit, Strength: 0.1},
			},
			InitialValue: orexinSetpoint,
			Min:          ptr(2), Max: ptr(100),
		},
		{
			Key: ACTH, Label: "Adrenocorticotropic Hormone", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 10, High: 80}, Tendency: common.TendencyNone,
			Setpoint: acthSetpoint, Tau: 20,
			Couplings: []Coupling{
				{Source: string(Cortisol), Effect: Inhibit, Strength: 0.12, DelayMinutes: 20},
			},
			InitialValue: acthSetpoint,
			Min:          ptr(2), Max: ptr(300),
		},
		{
			Key: TSH, Label: "Thyroid-Stimulating Hormone", Unit: units.UnitsPerLiter,
			ReferenceRange: units.ReferenceRange{Low: 0.4, High: 4.5}, Tendency: common.TendencyMid,
			Setpoint: tshSetpoint, Tau: 90,
			InitialValue: tshSetpoint,
			Min:          ptr(0.05), Max: ptr(15),
		},
		{
			Key: Thyroxine, Label: "Thyroxine (T4)", Unit: units.MicrogramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 4.5, High: 12.0}, Tendency: common.TendencyMid,
			Setpoint: thyroxineSetpoint, Tau: 4000,
			Production: []ProductionTerm{
				{Source: string(TSH), Coefficient: 0.5},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.0003},
			},
			InitialValue: thyroxineSetpoint,
			Min:          ptr(1.0), Max: ptr(25.0),
		},
		{
			Key: Triiodothyronine, Label: "Triiodothyronine (T3)", Unit: units.NanogramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 80, High: 200}, Tendency: common.TendencyMid,
			Setpoint: triiodothyronineSetpoint, Tau: 1440,
			Couplings: []Coupling{
				{Source: string(Thyroxine), Effect: Stimulate, Strength: 8.0},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.001},
			},
			InitialValue: triiodothyronineSetpoint,
			Min:          ptr(40), Max: ptr(400),
		},
		{
			Key: Prolactin, Label: "Prolactin", Unit: units.NanogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 2, High: 25}, Tendency: common.TendencyNone,
			Setpoint: prolactinSetpoint, Tau: 30,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.08},
			},
			InitialValue: prolactinSetpoint,
			Min:          ptr(1), Max: ptr(200),
		},
		{
			Key: Vasopressin, Label: "Vasopressin (ADH)", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 0.5, High: 5}, Tendency: common.TendencyNone,
			Setpoint: vasopressinSetpoint, Tau: 20,
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.1},
			},
			InitialValue: vasopressinSetpoint,
			Min:          ptr(0.1), Max: ptr(20),
		},
		{
			Key: Aldosterone, Label: "Aldosterone", Unit: units.NanogramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 1, High: 16}, Tendency: common.TendencyNone,
			Setpoint: aldosteroneSetpoint, Tau: 60,
			Production: []ProductionTerm{
				{Source: string(ReninPool), Coefficient: 4.0,
					Transform: func(x float64, snap Snapshot, ctx simcontext.Context) float64 {
						return x * snap.Activity(ActivityACE)
					},
				},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.05},
			},
			InitialValue: aldosteroneSetpoint,
			Min:          ptr(0.5), Max: ptr(60),
		},
		{
			Key: Histamine, Label: "Histamine", Unit: units.NanoMolar,
			ReferenceRange: units.ReferenceRange{Low: 0.3, High: 3.0}, Tendency: common.TendencyNone,
			Setpoint: histamineSetpoint, Tau: 10,
			Production: []ProductionTerm{
				{Source: string(HistamineReserve), Coefficient: 0.06},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.1},
			},
			InitialValue: histamineSetpoint,
			Min:          ptr(0.1), Max: ptr(30),
		},
		{
			Key: Acetylcholine, Label: "Acetylcholine", Unit: units.NanoMolar,
			ReferenceRange: units.ReferenceRange{Low: 5, High: 20}, Tendency: common.TendencyNone,
			Setpoint: acetylcholineSetpoint, Tau: 5,
			Production: []ProductionTerm{
				{Source: string(AcetylcholineVesicles), Coefficient: 0.1},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceEnzymeDependent, Rate: 0.2, Enzyme: ActivityAChE},
			},
			InitialValue: acetylcholineSetpoint,
			Min:          ptr(0.5), Max: ptr(60),
		},
		{
			Key: BetaEndorphin, Label: "Beta-Endorphin", Unit: units.PicogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 5, High: 40}, Tendency: common.TendencyNone,
			Setpoint: betaEndorphinSetpoint, Tau: 15,
			Production: []ProductionTerm{
				{Source: string(EndorphinReserve), Coefficient: 0.05},
			},
			Couplings: []Coupling{
				{Source: string(Cortisol), Effect: Stimulate, Strength: 0.3},
			},
			Clearance: []ClearanceTerm{
				{Kind: ClearanceLinear, Rate: 0.12},
			},
			InitialValue: betaEndorphinSetpoint,
			Min:          ptr(1), Max: ptr(150),
		},
		{
			Key: DiastolicBP, Label: "Diastolic Blood Pressure", Unit: units.MillimetersMercury,
			ReferenceRange: units.ReferenceRange{Low: 60, High: 85}, Tendency: common.TendencyMid,
			Setpoint: diastolicBPSetpoint, Tau: 6,
			Couplings: []Coupling{
				{Source: string(Norepinephrine), Effect: Stimulate, Strength: 0.004},
			},
			InitialValue: diastolicBPSetpoint,
			Min:          ptr(40), Max: ptr(140),
		},
		{
			Key: RespiratoryRate, Label: "Respiratory Rate", Unit: units.BreathsPerMinute,
			ReferenceRange: units.ReferenceRange{Low: 12, High: 18}, Tendency: common.TendencyMid,
			Setpoint: respiratoryRateSetpoint, Tau: 3,
			Couplings: []Coupling{
				{Source: string(Epinephrine), Effect: Stimulate, Strength: 0.01},
			},
			InitialValue: respiratoryRateSetpoint,
			Min:          ptr(6), Max: ptr(45),
		},
		{
			Key: Adiponectin, Label: "Adiponectin", Unit: units.NanogramPerML,
			ReferenceRange: units.ReferenceRange{Low: 5, High: 30}, Tendency: common.TendencyHigher,
			Setpoint: adiponectinSetpoint, Tau: 720,
			Couplings: []Coupling{
				{Source: string(Leptin), Effect: Inhibit, Strength: 0.2},
			},
			InitialValue: adiponectinSetpoint,
			Min:          ptr(1), Max: ptr(50),
		},
		{
			Key: LDLCholesterol, Label: "LDL Cholesterol", Unit: units.MilligramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 50, High: 130}, Tendency: common.TendencyLower,
			Setpoint: ldlCholesterolSetpoint, Tau: 4000,
			InitialValue: ldlCholesterolSetpoint,
			Min:          ptr(20), Max: ptr(300),
		},
		{
			Key: HDLCholesterol, Label: "HDL Cholesterol", Unit: units.MilligramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 40, High: 90}, Tendency: common.TendencyHigher,
			Setpoint: hdlCholesterolSetpoint, Tau: 4000,
			InitialValue: hdlCholesterolSetpoint,
			Min:          ptr(15), Max: ptr(120),
		},
		{
			Key: Triglycerides, Label: "Triglycerides", Unit: units.MilligramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 50, High: 150}, Tendency: common.TendencyLower,
			Setpoint: triglyceridesSetpoint, Tau: 600,
			Couplings: []Coupling{
				{Source: string(Glucose), Effect: Stimulate, Strength: 0.3},
				{Source: string(Insulin), Effect: Stimulate, Strength: 1.5},
			},
			InitialValue: triglyceridesSetpoint,
			Min:          ptr(20), Max: ptr(800),
		},
		{
			Key: CRP, Label: "C-Reactive Protein", Unit: units.MilligramPerDL,
			ReferenceRange: units.ReferenceRange{Low: 0.1, High: 3.0}, Tendency: common.TendencyLower,
			Setpoint: crpSetpoint, Tau: 2000,
			Couplings: []Coupling{
				{Source: string(SleepDebt), Effect: Stimulate, Strength: 0.15},
			},
			InitialValue: crpSetpoint,
			Min:          ptr(0), Max: ptr(50),
		},
		{
			Key: AlertnessIndex, Label: "Alertness Index", Unit: units.IndexUnit,
			ReferenceRange: units.ReferenceRange{Low: 30, High: 90}, Tendency: common.TendencyHigher,
			Setpoint: alertnessIndexSetpoint, Tau: 10,
			Couplings: []Coupling{
				{Source: string(Orexin), Effect: Stimulate, Strength: 0.8},
				{Source: string(AdenosinePressure), Effect: Inhibit, Strength: 40},
				{Source: string(GABA), Effect: Inhibit, Strength: 0.3},
			},
			InitialValue: alertnessIndexSetpoint,
			Min:          ptr(0), Max: ptr(100),
		},
	}
}
