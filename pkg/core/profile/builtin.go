package profile

// Entity names, shared with the catalog listings.
const (
	ArmedForces        = "Forces Armées Indiennes"
	Army               = "Armée de Terre Indienne"
	Navy               = "Marine Indienne"
	AirForce           = "Force Aérienne Indienne"
	StrategicForces    = "Forces Stratégiques"
	CoastGuard         = "Garde Côtière Indienne"
	SpecialForces      = "Forces Spéciales"
	IntegratedCommand  = "Commandement des Forces Intégrées"
	NuclearProgram     = "Programme Nucléaire Stratégique"
	ForceModernization = "Modernisation des Forces"
	MakeInIndia        = "Make in India - Défense"
	IntegratedAirDef   = "Défense Aérienne Intégrée"
	MaritimeAwareness  = "Maritime Domain Awareness"
	Cybersecurity      = "Cybersécurité"
	MilitarySpace      = "Espace Militaire"
)

// builtin is the fixed selection mapping. Entries leave a base nil where the
// entity has no specific figure; the fixed defaults then apply.
var builtin = []Definition{
	{
		Name:          ArmedForces,
		Category:      "total_force",
		BudgetBase:    Float(70.0),
		PersonnelBase: Float(1400),
		ExercisesBase: Float(120),
		PriorityTags: []Tag{
			TagNuclear, TagModernization, TagMaritime, TagCyber, TagConventional,
		},
		Doctrines:           []string{"Dissuasion Crédible", "Défense Active", "Riposte Massive"},
		SpecialCapabilities: []string{"Forces Rapides", "Guerre Montagne", "Projection Maritime"},
	},
	{
		Name:                Army,
		Category:            "land_branch",
		BudgetBase:          Float(30.0),
		PersonnelBase:       Float(1200),
		ExercisesBase:       Float(60),
		PriorityTags:        []Tag{TagConventional, TagModernization, TagMountainWarfare},
		Doctrines:           []string{"Cold Start", "Défense en profondeur"},
		SpecialCapabilities: []string{"Guerre Montagne", "Corps de frappe"},
		Command:             "Mountain Strike Corps",
	},
	{
		Name:          Navy,
		Category:      "naval_branch",
		PersonnelBase: Float(67),
		ExercisesBase: Float(40),
		PriorityTags: []Tag{
			TagCarriers, TagSubmarines, TagAntiSubmarine, TagProjection, TagMaritime,
		},
		Doctrines:           []string{"Sea Control", "Sea Denial", "Projection de puissance"},
		SpecialCapabilities: []string{"Flotte Orientale", "Flotte Occidentale", "Flotte du Sud"},
		DeployedSystems:     []string{"INS Vikramaditya", "INS Vikrant", "INS Kolkata", "INS Arihant"},
	},
	{
		Name:                AirForce,
		Category:            "air_branch",
		BudgetBase:          Float(15.0),
		PersonnelBase:       Float(140),
		ExercisesBase:       Float(35),
		PriorityTags:        []Tag{TagAirSuperiority, TagModernization, TagConventional},
		Doctrines:           []string{"Supériorité aérienne", "Frappe en profondeur"},
		SpecialCapabilities: []string{"Ravitaillement en vol", "Alerte avancée"},
		DeployedSystems:     []string{"Rafale", "Sukhoi Su-30MKI", "Tejas MK-1A"},
	},
	{
		Name:          StrategicForces,
		Category:      "strategic_branch",
		PersonnelBase: Float(8),
		ExercisesBase: Float(15),
		PriorityTags: []Tag{
			TagNuclear, TagNuclearTriad, TagBallisticMissiles, TagSubmarines,
		},
		Doctrines:       []string{"No First Use", "Dissuasion Crédible Minimale"},
		DeployedSystems: []string{"Agni-V", "Agni-IV", "Arihant", "Rafale"},
		Command:         "Commandement des Forces Stratégiques",
	},
	{
		Name:                CoastGuard,
		Category:            "coastal_branch",
		BudgetBase:          Float(1.0),
		PersonnelBase:       Float(13),
		ExercisesBase:       Float(20),
		PriorityTags:        []Tag{TagMaritime, TagCoastalSecurity, TagSurveillance},
		SpecialCapabilities: []string{"Recherche et sauvetage", "Surveillance ZEE"},
	},
	{
		Name:                SpecialForces,
		Category:            "special_branch",
		BudgetBase:          Float(2.0),
		PersonnelBase:       Float(10),
		ExercisesBase:       Float(30),
		PriorityTags:        []Tag{TagSpecialOperations, TagConventional},
		SpecialCapabilities: []string{"Contre-terrorisme", "Action directe"},
	},
	{
		Name:          IntegratedCommand,
		Category:      "joint_command",
		PersonnelBase: Float(20),
		ExercisesBase: Float(25),
		PriorityTags:  []Tag{TagJointOperations, TagCyber, TagConventional},
		Doctrines:     []string{"Coordination interarmes", "Guerre intégrée"},
		Command:       "Andaman and Nicobar Command",
	},
	{
		Name:                NuclearProgram,
		Category:            "strategic_program",
		BudgetBase:          Float(2.5),
		PriorityTags:        []Tag{TagNuclear, TagNuclearTriad, TagICBM, TagSubmarines},
		Doctrines:           []string{"No First Use - Riposte Massive"},
		SpecialCapabilities: []string{"Forces Terrestres", "Forces Aériennes", "Forces Navales"},
	},
	{
		Name:         ForceModernization,
		Category:     "program",
		BudgetBase:   Float(18.0),
		PriorityTags: []Tag{TagModernization, TagConventional},
	},
	{
		Name:         MakeInIndia,
		Category:     "program",
		BudgetBase:   Float(8.0),
		PriorityTags: []Tag{TagModernization, TagIndustrialBase},
	},
	{
		Name:            IntegratedAirDef,
		Category:        "program",
		BudgetBase:      Float(5.0),
		PriorityTags:    []Tag{TagAirDefense, TagModernization},
		DeployedSystems: []string{"S-400", "Akash", "Barak-8"},
	},
	{
		Name:         MaritimeAwareness,
		Category:     "program",
		BudgetBase:   Float(1.5),
		PriorityTags: []Tag{TagMaritime, TagSurveillance},
	},
	{
		Name:         Cybersecurity,
		Category:     "program",
		BudgetBase:   Float(0.8),
		PriorityTags: []Tag{TagCyber},
		Command:      "Defence Cyber Agency",
	},
	{
		Name:         MilitarySpace,
		Category:     "program",
		BudgetBase:   Float(1.2),
		PriorityTags: []Tag{TagSpace, TagSurveillance},
		Command:      "Defence Space Agency",
	},
}
