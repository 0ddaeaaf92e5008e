package registry

import "github.com/JeffJassky/pyhsim/common"

// Signal keys. Exported so profile, pd, intervention, and monitor definitions
// can reference them without repeating string literals.
const (
	Cortisol         common.SignalKey = "cortisol"
	Melatonin        common.SignalKey = "melatonin"
	Dopamine         common.SignalKey = "dopamine"
	Norepinephrine   common.SignalKey = "norepinephrine"
	Epinephrine      common.SignalKey = "epinephrine"
	Serotonin        common.SignalKey = "serotonin"
	Glucose          common.SignalKey = "glucose"
	Insulin          common.SignalKey = "insulin"
	Glucagon         common.SignalKey = "glucagon"
	Testosterone     common.SignalKey = "testosterone"
	Estrogen         common.SignalKey = "estrogen"
	Progesterone     common.SignalKey = "progesterone"
	LH               common.SignalKey = "lh"
	FSH              common.SignalKey = "fsh"
	GrowthHormone    common.SignalKey = "growthHormone"
	Ghrelin          common.SignalKey = "ghrelin"
	Leptin           common.SignalKey = "leptin"
	HeartRate        common.SignalKey = "heartRate"
	SystolicBP       common.SignalKey = "systolicBP"
	BodyTemperature  common.SignalKey = "bodyTemperature"
	GABA             common.SignalKey = "gaba"
	Glutamate        common.SignalKey = "glutamate"
	Orexin           common.SignalKey = "orexin"
	ACTH             common.SignalKey = "acth"
	TSH              common.SignalKey = "tsh"
	Thyroxine        common.SignalKey = "thyroxine"
	Triiodothyronine common.SignalKey = "triiodothyronine"
	Prolactin        common.SignalKey = "prolactin"
	Vasopressin      common.SignalKey = "vasopressin"
	Aldosterone      common.SignalKey = "aldosterone"
	Histamine        common.SignalKey = "histamine"
	Acetylcholine    common.SignalKey = "acetylcholine"
	BetaEndorphin    common.SignalKey = "betaEndorphin"
	DiastolicBP      common.SignalKey = "diastolicBP"
	RespiratoryRate  common.SignalKey = "respiratoryRate"
	Adiponectin      common.SignalKey = "adiponectin"
	LDLCholesterol   common.SignalKey = "ldlCholesterol"
	HDLCholesterol   common.SignalKey = "hdlCholesterol"
	Triglycerides    common.SignalKey = "triglycerides"
	CRP              common.SignalKey = "crp"
	AlertnessIndex   common.SignalKey = "alertnessIndex"
)

// Auxiliary keys.
const (
	DopamineVesicles    common.AuxKey = "dopamineVesicles"
	CRHPool             common.AuxKey = "crhPool"
	HepaticGlycogen     common.AuxKey = "hepaticGlycogen"
	AdenosinePressure   common.AuxKey = "adenosinePressure"
	InsulinAction       common.AuxKey = "insulinAction"
	CortisolIntegral    common.AuxKey = "cortisolIntegral"
	SleepDebt           common.AuxKey = "sleepDebt"
	CatecholamineReserve common.AuxKey = "catecholamineReserve"
	BetaCellReserve     common.AuxKey = "betaCellReserve"
	ReninPool           common.AuxKey = "reninPool"
	HistamineReserve    common.AuxKey = "histamineReserve"
	AcetylcholineVesicles common.AuxKey = "acetylcholineVesicles"
	EndorphinReserve    common.AuxKey = "endorphinReserve"
)

// Activity keys (receptor/transporter/enzyme), resolved through
// Snapshot.Activity rather than Snapshot.Value. Profile and PD definitions
// target these.
const (
	ActivityDAT      = "DAT"      // dopamine transporter
	ActivityCOMT     = "COMT"     // catecholamine-O-methyltransferase
	Activity11BHSD   = "11BHSD"   // 11-beta-hydroxysteroid dehydrogenase (cortisol clearance)
	ActivitySERT     = "SERT"     // serotonin transporter
	ActivityMAOA     = "MAOA"     // monoamine oxidase A
	ActivityADORA1   = "ADORA1"   // adenosine A1 receptor
	ActivityADORA2A  = "ADORA2A"  // adenosine A2A receptor
	ActivityDPP4     = "DPP4"     // incretin-degrading enzyme, gates insulin secretion sensitivity
	ActivityGR       = "GR"       // glucocorticoid receptor (cortisol feedback sensitivity)
	ActivityInsulinR = "InsulinR" // insulin receptor, gates glucose clearance
	ActivityACE      = "ACE"      // angiotensin-converting enzyme (renin-angiotensin-aldosterone axis)
	ActivityAChE     = "AChE"     // acetylcholinesterase
)
