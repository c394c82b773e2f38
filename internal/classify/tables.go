package classify

// Themes is the taxonomy for recurring life themes in free text.
var Themes = &Taxonomy{
	Name: "themes",
	Rules: []Rule{
		{Label: "work", Keywords: []string{"work", "job", "boss", "career", "office", "deadline", "coworker", "meeting"}},
		{Label: "relationships", Keywords: []string{"relationship", "partner", "friend", "boyfriend", "girlfriend", "marriage", "dating", "breakup"}},
		{Label: "family", Keywords: []string{"family", "mother", "father", "mom", "dad", "parent", "sibling", "brother", "sister"}},
		{Label: "anxiety", Keywords: []string{"anxious", "anxiety", "worried", "worry", "nervous", "panic", "overwhelm"}},
		{Label: "depression", Keywords: []string{"depressed", "depression", "hopeless", "empty", "numb", "worthless"}},
		{Label: "sleep", Keywords: []string{"sleep", "insomnia", "tired", "exhausted", "awake", "nightmare", "restless"}},
		{Label: "health", Keywords: []string{"health", "sick", "pain", "doctor", "illness", "headache", "exercise"}},
		{Label: "self-esteem", Keywords: []string{"confidence", "self-esteem", "failure", "not good enough", "ashamed", "insecure"}},
		{Label: "finances", Keywords: []string{"money", "debt", "rent", "bills", "afford", "budget"}},
		{Label: "loneliness", Keywords: []string{"lonely", "alone", "isolated", "nobody", "no one to talk"}},
	},
}

// Concerns is the taxonomy for active concerns worth surfacing to the
// assistant.
var Concerns = &Taxonomy{
	Name: "concerns",
	Rules: []Rule{
		{Label: "panic attacks", Keywords: []string{"panic attack", "can't breathe", "heart racing", "hyperventilat"}},
		{Label: "self-harm", Keywords: []string{"hurt myself", "self-harm", "self harm", "cutting"}},
		{Label: "burnout", Keywords: []string{"burnout", "burned out", "burnt out", "can't keep up", "too much to do"}},
		{Label: "grief", Keywords: []string{"grief", "passed away", "died", "funeral", "loss of"}},
		{Label: "conflict", Keywords: []string{"argument", "fight", "fought", "yelled", "conflict"}},
		{Label: "avoidance", Keywords: []string{"avoiding", "procrastinat", "putting off", "cancelled plans"}},
	},
}

// Achievements is the taxonomy for positive developments in free text.
var Achievements = &Taxonomy{
	Name: "achievements",
	Rules: []Rule{
		{Label: "progress", Keywords: []string{"progress", "improved", "getting better", "breakthrough", "proud of"}},
		{Label: "coping", Keywords: []string{"managed to", "calmed myself", "deep breath", "stayed calm", "coped"}},
		{Label: "connection", Keywords: []string{"reached out", "talked to", "opened up", "spent time with"}},
		{Label: "self-care", Keywords: []string{"went for a walk", "exercised", "meditated", "slept well", "took a break"}},
		{Label: "accomplishment", Keywords: []string{"finished", "completed", "accomplished", "achieved", "succeeded"}},
	},
}

// Distortions is the fixed 12-label cognitive-distortion taxonomy used by the
// CBT analytics. The label set is part of the analytics contract; do not
// reorder.
var Distortions = &Taxonomy{
	Name: "distortions",
	Rules: []Rule{
		{Label: "all-or-nothing", Keywords: []string{"always", "never", "every time", "completely", "totally", "nothing ever"}},
		{Label: "catastrophizing", Keywords: []string{"disaster", "terrible", "worst", "ruined", "catastrophe", "end of the world"}},
		{Label: "mind-reading", Keywords: []string{"they think", "she thinks", "he thinks", "they must think", "everyone thinks"}},
		{Label: "fortune-telling", Keywords: []string{"will fail", "going to fail", "won't work", "will never", "doomed"}},
		{Label: "should-statements", Keywords: []string{"should", "must", "have to", "ought to", "supposed to"}},
		{Label: "personalization", Keywords: []string{"my fault", "because of me", "i caused", "blame myself"}},
		{Label: "mental-filter", Keywords: []string{"only bad", "nothing good", "all i can see", "can't stop thinking about"}},
		{Label: "disqualifying-the-positive", Keywords: []string{"doesn't count", "just luck", "anyone could", "they were just being nice"}},
		{Label: "jumping-to-conclusions", Keywords: []string{"obviously", "clearly they", "no doubt", "i just know"}},
		{Label: "magnification-minimization", Keywords: []string{"huge deal", "no big deal", "blow out of proportion", "doesn't matter"}},
		{Label: "emotional-reasoning", Keywords: []string{"i feel like a", "feels true", "i feel useless", "i feel stupid"}},
		{Label: "labeling", Keywords: []string{"i'm a failure", "i'm an idiot", "i'm stupid", "i'm a loser", "i'm broken"}},
	},
}

// EmotionalState maps a bounded 1-6 mood value to a coarse label.
func EmotionalState(mood int32) string {
	switch {
	case mood <= 2:
		return "struggling"
	case mood == 3:
		return "neutral"
	case mood <= 5:
		return "positive"
	default:
		return "thriving"
	}
}
