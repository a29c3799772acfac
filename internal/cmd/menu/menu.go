package menu

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/internal/histogram"
	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
	"github.com/agentstation/marquee/pkg/movies"
)

// Menu runs the interactive loop. Every action goes through the catalog
// client, so each choice sees the document as it is on disk.
type Menu struct {
	client marquee.Client
	in     *bufio.Scanner
	out    io.Writer
	alerts alerts.Writer
	logger *zerolog.Logger
	width  int
	color  bool
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHistogramWidth sets the width of the longest histogram bar.
func WithHistogramWidth(width int) Option {
	return func(m *Menu) {
		if width > 0 {
			m.width = width
		}
	}
}

// WithColor enables colored headings and status lines.
func WithColor(enabled bool) Option {
	return func(m *Menu) {
		m.color = enabled
	}
}

// New creates a menu reading choices from in and writing to out.
func New(client marquee.Client, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		client: client,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logging.Default(),
		width:  constants.HistogramWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.alerts = alerts.NewFormatWriter(out, output.FormatTable).WithColor(m.color)
	return m
}

// Run shows the menu until the user exits, input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show()
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		cmd, ok := ParseCommand(choice)
		if !ok {
			m.alert(alerts.NewError("Invalid choice. Please try again."))
			continue
		}

		done, err := m.Dispatch(cmd)
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				return nil
			}
			m.logger.Error().Err(err).Stringer("command", cmd).Msg("Menu action failed")
			m.alert(alerts.NewError("Operation failed").WithError(err))
		}
		if done {
			return nil
		}
	}
}

// Dispatch runs a single menu entry. It reports whether the menu should
// stop.
func (m *Menu) Dispatch(cmd Command) (bool, error) {
	m.logger.Debug().Stringer("command", cmd).Msg("Menu dispatch")

	switch cmd {
	case CommandAdd:
		return false, m.add()
	case CommandDelete:
		return false, m.delete()
	case CommandUpdateRating:
		return false, m.updateRating()
	case CommandStats:
		return false, m.stats()
	case CommandSearch:
		return false, m.search()
	case CommandHistogram:
		return false, m.histogram()
	case CommandRandom:
		return false, m.random()
	case CommandSortedList:
		return false, m.listSorted()
	case CommandList:
		return false, m.list()
	case CommandExit:
		m.alert(alerts.NewInfo("Exiting application. Goodbye!"))
		return true, nil
	default:
		return false, fmt.Errorf("unknown menu command %d", int(cmd))
	}
}

func (m *Menu) show() {
	m.heading("\nMovie Application")
	for _, cmd := range Commands {
		fmt.Fprintf(m.out, "%d. %s\n", int(cmd), cmd)
	}
}

func (m *Menu) add() error {
	input, err := m.prompt("Enter movie title: ")
	if err != nil {
		return err
	}
	title, err := movies.ValidateTitle(input)
	if err != nil {
		m.reject(err)
		return nil
	}

	exists, err := m.client.Exists(title)
	if err != nil {
		return err
	}
	if exists {
		m.alert(alerts.Errorf("Movie '%s' already exists.", title))
		return nil
	}

	rating, ok, err := m.readRating("Enter movie rating (0-10): ")
	if err != nil || !ok {
		return err
	}

	input, err = m.prompt("Enter release year: ")
	if err != nil {
		return err
	}
	year, err := movies.ParseYear(input)
	if err != nil {
		m.reject(err)
		return nil
	}

	if err := m.client.Add(title, rating, year); err != nil {
		return err
	}
	m.alert(alerts.Successf("Movie '%s' added successfully!", title))
	return nil
}

func (m *Menu) delete() error {
	title, err := m.prompt("Enter movie title to delete: ")
	if err != nil {
		return err
	}

	removed, err := m.client.Delete(title)
	if err != nil {
		return err
	}
	if !removed {
		m.alert(alerts.Warningf("Movie '%s' not found.", title))
		return nil
	}
	m.alert(alerts.Successf("Movie '%s' deleted successfully!", title))
	return nil
}

func (m *Menu) updateRating() error {
	title, err := m.prompt("Enter movie title to update rating: ")
	if err != nil {
		return err
	}

	rating, ok, err := m.readRating("Enter new rating (0-10): ")
	if err != nil || !ok {
		return err
	}

	updated, err := m.client.UpdateRating(title, rating)
	if err != nil {
		return err
	}
	if !updated {
		m.alert(alerts.Warningf("Movie '%s' not found.", title))
		return nil
	}
	m.alert(alerts.Successf("Movie '%s' rating updated successfully!", title))
	return nil
}

func (m *Menu) stats() error {
	s, err := m.client.Stats()
	if err != nil {
		return err
	}
	if s == nil {
		m.alert(alerts.NewWarning("No movies available."))
		return nil
	}

	m.heading("\nMovie Statistics:")
	fmt.Fprintf(m.out, "Total Movies: %d\n", s.Count)
	fmt.Fprintf(m.out, "Average Rating: %.2f\n", s.Average)
	fmt.Fprintf(m.out, "Median Rating: %.2f\n", s.Median)
	fmt.Fprintf(m.out, "Mode Rating: %s\n", s.Mode)
	fmt.Fprintln(m.out, "Highest Rated:")
	for _, mv := range s.Highest {
		fmt.Fprintf(m.out, "%s (%s)\n", mv.Title, movies.FormatRating(mv.Rating))
	}
	fmt.Fprintln(m.out, "Lowest Rated:")
	for _, mv := range s.Lowest {
		fmt.Fprintf(m.out, "%s (%s)\n", mv.Title, movies.FormatRating(mv.Rating))
	}
	return nil
}

func (m *Menu) search() error {
	query, err := m.prompt("Enter the movie title: ")
	if err != nil {
		return err
	}

	result, err := m.client.Search(query)
	if err != nil {
		return err
	}

	switch result.Kind {
	case movies.KindExact:
		m.alert(alerts.NewSuccess("Exact match(es) found:"))
		m.printMovies(result.Matches)
	case movies.KindSuggestion:
		m.alert(alerts.Infof("Did you mean: %s?", result.Suggestion))
	default:
		m.alert(alerts.NewWarning("No close matches found."))
	}
	return nil
}

func (m *Menu) histogram() error {
	ratings, err := m.client.Ratings()
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		m.alert(alerts.NewWarning("No movie ratings available to display."))
		return nil
	}

	m.heading("\nMovie Ratings Distribution")
	return histogram.Render(m.out, histogram.Compute(ratings, constants.HistogramBins), m.width)
}

func (m *Menu) random() error {
	mv, err := m.client.PickRandom()
	if err != nil {
		return err
	}
	if mv == nil {
		m.alert(alerts.NewWarning("No movies available."))
		return nil
	}
	m.alert(alerts.Successf("Random Pick: %s", mv))
	return nil
}

func (m *Menu) listSorted() error {
	ms, err := m.client.SortedByRating()
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		m.alert(alerts.NewWarning("No movies available."))
		return nil
	}
	m.heading("\nMovies Sorted by Rating:")
	m.printMovies(ms)
	return nil
}

func (m *Menu) list() error {
	ms, err := m.client.List()
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		m.alert(alerts.NewWarning("No movies found."))
		return nil
	}
	m.heading("\nAll Movies:")
	m.printMovies(ms)
	return nil
}

// readRating prompts for a rating. ok is false when the input was rejected.
func (m *Menu) readRating(label string) (rating float64, ok bool, err error) {
	input, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	rating, err = movies.ParseRating(input)
	if err != nil {
		m.reject(err)
		return 0, false, nil
	}
	return rating, true, nil
}

// prompt writes label and reads one line. It returns io.EOF when input ends.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		if err := m.in.Err(); err != nil {
			return "", errors.WrapIO("read", "input", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(m.in.Text(), "\r"), nil
}

// reject reports invalid input.
func (m *Menu) reject(err error) {
	var verr *errors.ValidationError
	if stderrors.As(err, &verr) {
		m.alert(alerts.Errorf("Invalid %s: %s.", verr.Field, verr.Message))
		return
	}
	m.alert(alerts.NewError("Invalid input").WithError(err))
}

func (m *Menu) alert(a *alerts.Alert) {
	if err := m.alerts.WriteAlert(a); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to write alert")
	}
}

func (m *Menu) heading(text string) {
	if m.color {
		c := color.New(color.FgMagenta)
		c.EnableColor()
		c.Fprintln(m.out, text)
		return
	}
	fmt.Fprintln(m.out, text)
}

func (m *Menu) printMovies(ms []movies.Movie) {
	for _, mv := range ms {
		fmt.Fprintln(m.out, mv.String())
	}
}
