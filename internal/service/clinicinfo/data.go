package clinicinfo

// Site content. Mirrors the published website copy; edit here when the clinic
// changes its programs or hours.

var defaultInfo = Info{
	Name:        "Healing Hands Physical Therapy Associates LLC",
	Description: "Stop Hurting. Start Healing. Personalized, evidence-based physical therapy care for Livonia, Novi, Farmington and all of Wayne & Oakland County.",
	URL:         "https://healinghandsmipt.com",
	Phone:       "248 560 7994",
	TollFree:    "877 999 5885",
	Fax:         "(248) 617-2026",
	Email:       "info@healinghandsmipt.com",
	Address: Address{
		Street: "20319 Farmington Road, Suite A",
		City:   "Livonia",
		State:  "MI",
		Zip:    "48152",
	},
	Hours: []string{
		"Monday: 9:30 AM - 7:00 PM",
		"Tuesday: 7:30 AM - 1:00 PM",
		"Wednesday: 7:30 AM - 7:00 PM",
		"Thursday: 7:30 AM - 7:00 PM",
		"Friday: 7:30 AM - 1:00 PM",
	},
	Navigation: []NavItem{
		{Name: "Home", Href: "/"},
		{Name: "Services", Href: "/services"},
		{Name: "About", Href: "/about"},
		{Name: "Contact", Href: "/contact"},
	},
	Social: SocialLinks{
		Facebook:  "https://facebook.com/healinghandspt",
		Instagram: "https://instagram.com/healinghandspt",
		LinkedIn:  "https://linkedin.com/company/healinghandspt",
	},
}

var serviceCatalog = []ServiceEntry{
	{
		ID:               "recover-rebuild-return",
		Title:            "Recover Rebuild Return.",
		Tagline:          "Recover. Rebuild. Return.",
		ShortDescription: "Regain movement and strength after injury with personalized plans using advanced tools like MSK ultrasound and BFR training.",
		Description:      "Regain movement, strength, and confidence after injury or surgery with care designed just for you. Our personalized therapy plans help you move better and feel stronger, treating a wide range of conditions from sprains and tendon issues to joint replacements and neurological conditions. We incorporate advanced tools such as musculoskeletal (MSK) ultrasound, surface EMG biofeedback, and Blood Flow Restriction (BFR) training to enhance recovery and support faster, more effective outcomes.",
		KeyBenefits: []string{
			"Personalized therapy plans for all ages",
			"Treatment for sprains, tendonitis, and joint replacements",
			"Musculoskeletal (MSK) ultrasound imaging",
			"Surface EMG biofeedback",
			"Blood Flow Restriction (BFR) training",
		},
		Icon: "Dumbbell",
	},
	{
		ID:               "neck-back-care",
		Title:            "Neck and Back Care",
		Tagline:          "Move freely, live fully.",
		ShortDescription: "Advanced care for neck and back pain combining hands-on therapy and education for long-term relief.",
		Description:      "Advanced care for neck and back pain designed to help you move comfortably and confidently again. Our personalized treatment plans combine hands-on therapy, targeted exercises, and education to address the root cause of pain and support long-term relief.",
		KeyBenefits: []string{
			"Root cause pain assessment",
			"Hands-on manual therapy",
			"Targeted therapeutic exercises",
			"Spinal stabilization techniques",
			"Patient education for long-term management",
		},
		Icon: "Spine",
	},
	{
		ID:               "pelvic-health",
		Title:            "Male Pelvic Health Care",
		Tagline:          "Confident movement starts at your core.",
		ShortDescription: "Discreet, specialized therapy for men treating pelvic pain and bladder control using biofeedback and ultrasound.",
		Description:      "We provide discreet, specialized physical therapy for men experiencing pelvic pain or bladder control concerns. Our care combines hands-on manual therapy, internal pelvic floor trigger point management, and dry needling with advanced tools such as biofeedback, musculoskeletal ultrasound, and EMG to reduce pain, improve control, and help you return to daily life with confidence.",
		KeyBenefits: []string{
			"Discreet, specialized male pelvic care",
			"Internal pelvic floor trigger point management",
			"Dry needling for muscle tension",
			"Biofeedback and EMG analysis",
			"Musculoskeletal ultrasound",
		},
		Icon: "Heart",
	},
	{
		ID:               "vestibular-rehab",
		Title:            "Vestibular Rehab",
		Tagline:          "Science-Driven Solutions for Dizziness and Balance",
		ShortDescription: "Stop the spinning with targeted therapy for BPPV and balance disorders using the latest neuro-scientific research.",
		Description:      "Dizziness, vertigo, and imbalance affect your confidence as much as your movement. Our Advanced Vestibular Rehab program provides targeted therapy for BPPV, vestibular neuritis, and balance disorders, integrating the latest neuro-scientific research with evidence-based maneuvers and habituation exercises tailored to your specific symptoms.",
		KeyBenefits: []string{
			"Treatment for BPPV and vestibular neuritis",
			"Balance disorder rehabilitation",
			"Evidence-based habituation exercises",
			"Neuro-scientific research integration",
			"Fall prevention strategies",
		},
		Icon: "Dizzy",
	},
	{
		ID:               "cervicogenic-headaches",
		Title:            "Cervicogenic headaches",
		Tagline:          "From Neck Strain to Brain Strain—We Help You Find Relief.",
		ShortDescription: "Treat the root cause of headaches originating from the neck with manual therapy and posture restoration.",
		Description:      "If your headaches radiate from the base of your skull or are triggered by neck movement, you may be experiencing cervicogenic headaches. Unlike typical migraines, these originate from issues in the cervical spine. We combine advanced mobilization techniques, dry needling, targeted muscle re-education, posture restoration, ergonomics, and tailor-made exercises to restore your neck's natural function rather than mask the symptoms.",
		KeyBenefits: []string{
			"Advanced cervical mobilization techniques",
			"Dry needling for headache relief",
			"Targeted muscle re-education",
			"Posture restoration and ergonomics",
			"Root cause treatment (not just symptom masking)",
		},
		Icon: "Zap",
	},
	{
		ID:               "tmj-disorders",
		Title:            "TMJ Disorders",
		Tagline:          "Science-Backed Solutions for Jaw and Facial Pain.",
		ShortDescription: "Relieve jaw pain and clicking with comprehensive therapy including intra-oral techniques and dry needling.",
		Description:      "Relieve jaw pain, tension, and clicking with specialized TMJ physical therapy designed to restore comfortable movement and function. Our comprehensive approach integrates hands-on manual therapy, intra-oral techniques, dry needling, targeted exercise, and posture correction to address both jaw and neck contributors to symptoms.",
		KeyBenefits: []string{
			"Intra-oral manual therapy techniques",
			"Jaw and neck posture correction",
			"Dry needling for facial pain",
			"Clicking and tension reduction",
			"Restoration of comfortable eating and speaking",
		},
		Icon: "Activity",
	},
	{
		ID:               "foot-ankle-care",
		Title:            "Exercise Smarter, Not Harder. Consistency Over Intensity",
		Tagline:          "Your Path to Safe, Consistent Fitness.",
		ShortDescription: "A personalized wellness roadmap focusing on movement patterns, injury prevention, and long-term fitness adherence.",
		Description:      "An individualized wellness program that includes education, movement assessment, and progressive exercise planning to optimize training load, minimize injury risk, and enhance long-term adherence. Wellness isn't a race; it's a lifestyle. We provide a tailor-made roadmap that fits into your actual life, whether you are returning to activity or looking to maintain your independence.",
		KeyBenefits: []string{
			"Comprehensive movement assessment",
			"Progressive exercise planning",
			"Training load optimization",
			"Injury risk minimization",
			"Long-term adherence strategies",
		},
		Icon: "Dumbbell",
	},
}
