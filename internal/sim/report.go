package sim

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/clawful/internal/games/clawful"
)

// Summary aggregates the results of a run.
type Summary struct {
	Games         int     `json:"games"`
	MeanScore     float64 `json:"mean_score"`
	StdScore      float64 `json:"std_score"`
	P50Score      float64 `json:"p50_score"`
	P90Score      float64 `json:"p90_score"`
	MaxScore      int     `json:"max_score"`
	MeanDrops     float64 `json:"mean_drops"`
	MeanMaxChain  float64 `json:"mean_max_chain"`
	BestChain     int     `json:"best_chain"`
	LargestGroup  int     `json:"largest_group"`
	OverflowRatio float64 `json:"overflow_ratio"`
	NoMovesRatio  float64 `json:"no_moves_ratio"`
	TimeoutRatio  float64 `json:"timeout_ratio"`
}

// Report is what a run produces and what --out stores.
type Report struct {
	Game    string       `json:"game"`
	Summary Summary      `json:"summary"`
	Results []GameResult `json:"results"`
}

// NewReport summarizes results.
func NewReport(game string, results []GameResult) *Report {
	return &Report{Game: game, Summary: Summarize(results), Results: results}
}

// Summarize computes the statistics of a set of results.
func Summarize(results []GameResult) Summary {
	s := Summary{Games: len(results)}
	if len(results) == 0 {
		return s
	}

	scores := make([]float64, len(results))
	drops := make([]float64, len(results))
	chains := make([]float64, len(results))
	var overflow, noMoves, timeout int
	for i, r := range results {
		scores[i] = float64(r.Score)
		drops[i] = float64(r.Drops)
		chains[i] = float64(r.MaxChain)
		s.MaxScore = max(s.MaxScore, r.Score)
		s.BestChain = max(s.BestChain, r.MaxChain)
		s.LargestGroup = max(s.LargestGroup, r.LargestGroup)
		switch r.Reason {
		case clawful.ReasonOverflow:
			overflow++
		case clawful.ReasonNoMoves:
			noMoves++
		case ReasonTimeout:
			timeout++
		}
	}

	s.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.StdScore = stat.StdDev(scores, nil)
	}
	sort.Float64s(scores)
	s.P50Score = stat.Quantile(0.5, stat.Empirical, scores, nil)
	s.P90Score = stat.Quantile(0.9, stat.Empirical, scores, nil)
	s.MeanDrops = stat.Mean(drops, nil)
	s.MeanMaxChain = stat.Mean(chains, nil)

	n := float64(len(results))
	s.OverflowRatio = float64(overflow) / n
	s.NoMovesRatio = float64(noMoves) / n
	s.TimeoutRatio = float64(timeout) / n
	return s
}

// WriteTable prints the summary as a boxed table.
func (r *Report) WriteTable(w io.Writer) error {
	p := message.NewPrinter(language.English)
	s := r.Summary
	rows := [][2]string{
		{"Games", p.Sprintf("%d", s.Games)},
		{"Mean score", p.Sprintf("%.2f", s.MeanScore)},
		{"Std dev", p.Sprintf("%.2f", s.StdScore)},
		{"P50 score", p.Sprintf("%.0f", s.P50Score)},
		{"P90 score", p.Sprintf("%.0f", s.P90Score)},
		{"Max score", p.Sprintf("%d", s.MaxScore)},
		{"Mean drops", p.Sprintf("%.1f", s.MeanDrops)},
		{"Mean best chain", p.Sprintf("%.2f", s.MeanMaxChain)},
		{"Best chain", p.Sprintf("%d", s.BestChain)},
		{"Largest group", p.Sprintf("%d", s.LargestGroup)},
		{"Overflow", p.Sprintf("%.1f %%", 100*s.OverflowRatio)},
		{"No moves", p.Sprintf("%.1f %%", 100*s.NoMovesRatio)},
		{"Timeout", p.Sprintf("%.1f %%", 100*s.TimeoutRatio)},
	}
	_, err := io.WriteString(w, fmtTable(r.Game, rows))
	return err
}

func fmtTable(title string, rows [][2]string) string {
	keyW, valW := 0, 0
	for _, row := range rows {
		keyW = max(keyW, runewidth.StringWidth(row[0]))
		valW = max(valW, runewidth.StringWidth(row[1]))
	}
	keyW += 2
	valW += 2
	inner := keyW + valW + 1
	if tw := runewidth.StringWidth(title) + 2; tw > inner {
		valW += tw - inner
		inner = tw
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", inner) + "+\n")
	left := (inner - runewidth.StringWidth(title)) / 2
	right := inner - runewidth.StringWidth(title) - left
	fmt.Fprintf(&b, "|%s%s%s|\n", blank(left), title, blank(right))
	b.WriteString("+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n",
			runewidth.FillRight(row[0], keyW-2),
			runewidth.FillRight(row[1], valW-2))
	}
	b.WriteString("+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n")
	return b.String()
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
