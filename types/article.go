package types

// Article represents a single headline record. The news API defines the
// schema loosely, so the record is kept as a raw key/value map: every
// field the API returned is carried through serialization unchanged.
// The analyzer adds two fields on top, sentiment and sentiment_score.
type Article map[string]any

// Field keys added by the analyzer
const (
	SentimentKey      = "sentiment"
	SentimentScoreKey = "sentiment_score"
)

// Title returns the headline text, or "" when the field is missing,
// empty, or not a string.
func (a Article) Title() string {
	title, _ := a["title"].(string)
	return title
}

// SetSentiment attaches the classifier output to the record.
func (a Article) SetSentiment(label string, score float64) {
	a[SentimentKey] = label
	a[SentimentScoreKey] = score
}

// Sentiment returns the attached label and score, with ok=false when the
// record has not been analyzed yet.
func (a Article) Sentiment() (label string, score float64, ok bool) {
	label, okLabel := a[SentimentKey].(string)
	score, okScore := a[SentimentScoreKey].(float64)
	return label, score, okLabel && okScore
}
