package syllabus

type (
	SubjectTopics struct {
		Subject string   `json:"subject"`
		Topics  []string `json:"topics"`
	}

	ClassSyllabus struct {
		ClassName string          `json:"className"`
		Subjects  []SubjectTopics `json:"subjects"`
	}
)

// PrimaryCatalog is the static syllabus for classes 1st through 8th that the
// progress tracker is filled in against.
var PrimaryCatalog = []ClassSyllabus{
	{
		ClassName: "Class 1st",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"Subtraction (single digit)"}},
			{Subject: "English", Topics: []string{"Action words", "Simple present tense", "Opposite words (singular & plural)"}},
			{Subject: "Hindi", Topics: []string{"शब्द परिचय (छोटे शब्द)"}},
			{Subject: "Values & GK", Topics: []string{"My Family and Helpers Around Us (General Knowledge)"}},
		},
	},
	{
		ClassName: "Class 2nd",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"Multiplication (2-digit × 1-digit)", "Tables (2–10)"}},
			{Subject: "English", Topics: []string{"Verbs (present tense)", "Sentence types"}},
			{Subject: "Hindi", Topics: []string{"सर्वनाम (Pronoun)"}},
			{Subject: "Values & GK", Topics: []string{"Festivals of India (General Knowledge)"}},
		},
	},
	{
		ClassName: "Class 3rd",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"Multiplication (3-digit × 2-digit)", "Table up to 20"}},
			{Subject: "English", Topics: []string{"Tenses (simple present, past, future)"}},
			{Subject: "Hindi", Topics: []string{"शब्द भंडार (Unseen Passage)"}},
			{Subject: "Science", Topics: []string{"Nutrition in living organisms", "Measurement of physical quantities"}},
		},
	},
	{
		ClassName: "Class 4th",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"Division (3-digit ÷ 2-digit)"}},
			{Subject: "English", Topics: []string{"Tenses (continuous & perfect)"}},
			{Subject: "Hindi", Topics: []string{"शब्द भंडार (basic meaning of words)"}},
			{Subject: "Science", Topics: []string{"Substances & their surroundings", "Nutrition and diet"}},
			{Subject: "Values & GK", Topics: []string{"Indian Monuments and Famous Places (General Knowledge)"}},
		},
	},
	{
		ClassName: "Class 5th",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"Fractions (operations)"}},
			{Subject: "English", Topics: []string{"Minute and Hour"}},
			{Subject: "Hindi", Topics: []string{"शब्द भंडार (Unseen Passage)"}},
			{Subject: "Science", Topics: []string{"Nutrition in living organisms", "Measurement of physical quantities"}},
			{Subject: "Values & GK", Topics: []string{"Introduction to Maps and Indian States (General Knowledge)"}},
		},
	},
	{
		ClassName: "Class 6th",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"HCF / LCM", "Divisibility"}},
			{Subject: "English", Topics: []string{"Journey to the West", "Tenses (past, present, future)"}},
			{Subject: "Science", Topics: []string{"Substances & their types", "Living and Non-Living things"}},
		},
	},
	{
		ClassName: "Class 7th",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"Angles and pair of angles", "Operation on Rational Numbers"}},
			{Subject: "English", Topics: []string{"The Kids (Unseen passage)", "Tenses", "Phrases & Their Types"}},
			{Subject: "Science", Topics: []string{"Heat", "Electricity and Magnetism"}},
		},
	},
	{
		ClassName: "Class 8th",
		Subjects: []SubjectTopics{
			{Subject: "Maths", Topics: []string{"Altitude and Median of a Triangle", "Linear Equations", "Algebraic Expressions"}},
			{Subject: "English", Topics: []string{"The Treasure Within", "Sentence & Types", "Determiners", "Tenses (past, present, future)"}},
			{Subject: "Science", Topics: []string{"Force & Pressure", "Metals and Non-Metals"}},
		},
	},
}
