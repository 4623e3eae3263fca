package question

// DemoSource returns a bundled in-memory source so the app works with
// no data endpoint configured. The anatomy targets reference a stock
// 800x600 torso figure shipped with the docs.
func DemoSource() StaticSource {
	return StaticSource{
		"anatomy":  demoAnatomy,
		"medicine": demoMedicine,
		"pharmacy": demoPharmacy,
	}
}

var demoAnatomy = Pool{
	{
		ID: "demo-anat-1", Category: "anatomy", Kind: KindCoordinate,
		Prompt:   "Locate the apex of the heart",
		ImageRef: "torso-anterior", ImageW: 800, ImageH: 600,
		Target: Target{X: 430, Y: 260, Radius: 40},
	},
	{
		ID: "demo-anat-2", Category: "anatomy", Kind: KindCoordinate,
		Prompt:   "Locate the right kidney",
		ImageRef: "torso-anterior", ImageW: 800, ImageH: 600,
		Target: Target{X: 330, Y: 380, Radius: 45},
	},
	{
		ID: "demo-anat-3", Category: "anatomy", Kind: KindCoordinate,
		Prompt:   "Locate the gallbladder",
		ImageRef: "torso-anterior", ImageW: 800, ImageH: 600,
		Target: Target{X: 350, Y: 330, Radius: 35},
	},
	{
		ID: "demo-anat-4", Category: "anatomy", Kind: KindCoordinate,
		Prompt:   "Locate the spleen",
		ImageRef: "torso-anterior", ImageW: 800, ImageH: 600,
		Target: Target{X: 490, Y: 340, Radius: 40},
	},
	{
		ID: "demo-anat-5", Category: "anatomy", Kind: KindCoordinate,
		Prompt:   "Locate the thyroid gland",
		ImageRef: "torso-anterior", ImageW: 800, ImageH: 600,
		Target: Target{X: 400, Y: 110, Radius: 30},
	},
}

var demoMedicine = Pool{
	{
		ID: "demo-med-1", Category: "medicine", Kind: KindChoice,
		Prompt:      "Which electrolyte disturbance classically causes peaked T waves?",
		Options:     [4]string{"Hypokalemia", "Hyperkalemia", "Hyponatremia", "Hypercalcemia"},
		CorrectKey:  "B",
		Explanation: "Hyperkalemia raises the resting membrane potential and shows peaked T waves early.",
	},
	{
		ID: "demo-med-2", Category: "medicine", Kind: KindChoice,
		Prompt:      "First-line treatment for anaphylaxis?",
		Options:     [4]string{"IV hydrocortisone", "IM adrenaline", "Oral antihistamine", "Nebulised salbutamol"},
		CorrectKey:  "B",
		Explanation: "Intramuscular adrenaline is given before any other drug in anaphylaxis.",
	},
	{
		ID: "demo-med-3", Category: "medicine", Kind: KindChoice,
		Prompt:      "Which murmur is associated with aortic stenosis?",
		Options:     [4]string{"Ejection systolic", "Pansystolic", "Early diastolic", "Mid-diastolic"},
		CorrectKey:  "A",
		Explanation: "Aortic stenosis produces an ejection systolic murmur radiating to the carotids.",
	},
	{
		ID: "demo-med-4", Category: "medicine", Kind: KindChoice,
		Prompt:      "Most common causative organism of community-acquired pneumonia?",
		Options:     [4]string{"Haemophilus influenzae", "Mycoplasma pneumoniae", "Streptococcus pneumoniae", "Legionella pneumophila"},
		CorrectKey:  "C",
		Explanation: "Streptococcus pneumoniae remains the most frequent cause of CAP in adults.",
	},
	{
		ID: "demo-med-5", Category: "medicine", Kind: KindChoice,
		Prompt:      "Which finding is typical of iron-deficiency anaemia?",
		Options:     [4]string{"Macrocytosis", "Target cells", "Microcytic hypochromic cells", "Spherocytes"},
		CorrectKey:  "C",
		Explanation: "Iron deficiency gives small, pale red cells with a low MCV and MCH.",
	},
}

var demoPharmacy = Pool{
	{
		ID: "demo-pharm-1", Category: "pharmacy", Kind: KindChoice,
		Prompt:      "Which drug class do ACE inhibitors belong to?",
		Options:     [4]string{"Antiarrhythmics", "Antihypertensives", "Anticoagulants", "Antipsychotics"},
		CorrectKey:  "B",
		Explanation: "ACE inhibitors lower blood pressure by blocking angiotensin II formation.",
	},
	{
		ID: "demo-pharm-2", Category: "pharmacy", Kind: KindChoice,
		Prompt:      "Warfarin's anticoagulant effect is monitored with which test?",
		Options:     [4]string{"APTT", "INR", "Bleeding time", "D-dimer"},
		CorrectKey:  "B",
		Explanation: "Warfarin inhibits vitamin K dependent factors and is dosed against the INR.",
	},
	{
		ID: "demo-pharm-3", Category: "pharmacy", Kind: KindChoice,
		Prompt:      "Which antibiotic is contraindicated in children due to cartilage toxicity?",
		Options:     [4]string{"Amoxicillin", "Azithromycin", "Ciprofloxacin", "Cefalexin"},
		CorrectKey:  "C",
		Explanation: "Fluoroquinolones can damage growing cartilage and are avoided in children.",
	},
	{
		ID: "demo-pharm-4", Category: "pharmacy", Kind: KindChoice,
		Prompt:      "The antidote for paracetamol overdose is:",
		Options:     [4]string{"Naloxone", "N-acetylcysteine", "Flumazenil", "Atropine"},
		CorrectKey:  "B",
		Explanation: "N-acetylcysteine replenishes glutathione and prevents hepatic necrosis.",
	},
	{
		ID: "demo-pharm-5", Category: "pharmacy", Kind: KindChoice,
		Prompt:      "Which of these is a loop diuretic?",
		Options:     [4]string{"Spironolactone", "Bendroflumethiazide", "Furosemide", "Amiloride"},
		CorrectKey:  "C",
		Explanation: "Furosemide acts on the Na-K-2Cl transporter in the thick ascending limb.",
	},
}
