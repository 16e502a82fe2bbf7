package dashboard

// State is the observable state of the dashboard.
type State int

const (
	Idle State = iota
	Rendered
	Failed
)

func (s State) String() string {
	switch s {
	case Rendered:
		return "rendered"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FailureNotice is displayed when a fetch returns no data.
const FailureNotice = "❌ Could not retrieve data. Try again later."

// Option is one entry of a selection control.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Controls are the three selection inputs shown in every state.
type Controls struct {
	Countries []Option `json:"countries"`
	Cities    []Option `json:"cities"`
	Units     []Option `json:"units"`
}

// CurrentPanel is the formatted current-conditions section.
type CurrentPanel struct {
	Header      string `json:"header"`
	IconURL     string `json:"iconUrl,omitempty"`
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	LocalTime   string `json:"localTime"`

	// AirQuality is empty when the provider sent no air-quality block.
	AirQuality string `json:"airQuality,omitempty"`
}

// Card is a collapsed-by-default forecast panel.
type Card struct {
	Title        string `json:"title"`
	Avg          string `json:"avg"`
	MaxMin       string `json:"maxMin"`
	ChanceOfRain string `json:"chanceOfRain"`
}

// Series is one line of the temperature trend chart.
type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
}

// Chart is the temperature trend chart model. Series values are aligned
// with Labels.
type Chart struct {
	Title  string   `json:"title"`
	YAxis  string   `json:"yAxis"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// View is the render model produced for one request.
type View struct {
	ID        string        `json:"id"`
	State     State         `json:"state"`
	Selection Selection     `json:"selection"`
	Controls  Controls      `json:"controls"`
	Notice    string        `json:"notice,omitempty"`
	Current   *CurrentPanel `json:"current,omitempty"`
	Cards     []Card        `json:"cards,omitempty"`
	Chart     *Chart        `json:"chart,omitempty"`
}

// IsRendered is a template helper.
func (v View) IsRendered() bool { return v.State == Rendered }

// IsFailed is a template helper.
func (v View) IsFailed() bool { return v.State == Failed }
