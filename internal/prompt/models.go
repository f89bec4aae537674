package prompt

type NoteView struct {
	Time  string
	Title string
	Body  string
}

type DailyPromptData struct {
	Date  string
	Notes []NoteView
}

type DaySummaryView struct {
	Date         string
	Summary      string
	DominantMood string
	MoodScore    int
	Highlights   string
	Advice       string
}

type WeeklyPromptData struct {
	WeekStart string
	WeekEnd   string
	Days      []DaySummaryView
}

// MoviePromptData is the mood context. A zero MoodScore is left out of the prompt.
type MoviePromptData struct {
	Mood        string
	MoodScore   int
	Summary     string
	Highlights  []string
	Affirmation string
}
