package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"showlog/gdoc"
)

// multilineTerminator ends a pasted multiline block.
const multilineTerminator = "::end::"

// knownShows maps a promotion to its weekly TV shows, offered as a numbered
// menu instead of free-form entry.
var knownShows = map[string][]string{
	"WWE": {"RAW", "SMACKDOWN"},
	"AEW": {"DYNAMITE", "COLLISION"},
}

// prompter drives the interactive question flow. Reads come from in, all
// prompt text goes to out.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// showMetadata collects the show identity: date, promotion, and either a
// PPV name or a TV show picked from the promotion's known lineup.
func (p *prompter) showMetadata() (gdoc.ShowMetadata, error) {
	fmt.Fprintln(p.out, "## STEP 1: METADATA")
	fmt.Fprintln(p.out)

	date, err := p.date("Enter event date (YYYY-MM-DD): ")
	if err != nil {
		return gdoc.ShowMetadata{}, err
	}
	promotion, err := p.required("Enter promotion (e.g., WWE or AEW): ")
	if err != nil {
		return gdoc.ShowMetadata{}, err
	}

	isPPV, err := p.yesNo("Is this a PPV (Pay-Per-View)? (y/N): ", false)
	if err != nil {
		return gdoc.ShowMetadata{}, err
	}

	meta := gdoc.ShowMetadata{
		EventDate: date,
		Promotion: promotion,
		ShowType:  "TV",
	}
	if isPPV {
		meta.ShowType = "PPV"
		meta.ShowName, err = p.required("Enter PPV show name (e.g., Royal Rumble): ")
	} else if shows, ok := knownShows[strings.ToUpper(strings.TrimSpace(promotion))]; ok {
		meta.ShowName, err = p.selectFrom(
			fmt.Sprintf("Select the show for %s:", strings.ToUpper(strings.TrimSpace(promotion))), shows)
	} else {
		meta.ShowName, err = p.required("Enter show (e.g., RAW): ")
	}
	if err != nil {
		return gdoc.ShowMetadata{}, err
	}

	fmt.Fprintf(p.out, "\nGenerating doc named %q...\n\n", meta.DocTitle())
	return meta, nil
}

func (p *prompter) playByPlay() (string, error) {
	fmt.Fprintln(p.out, "## STEP 2: Play-by-Play")
	fmt.Fprintln(p.out)
	return p.multiline("Paste your copied Play-by-Play recap text.\n" +
		"Finish with a line containing only '::end::' (without quotes).")
}

func (p *prompter) personalNotes() (string, error) {
	fmt.Fprintln(p.out, "\n## STEP 3: YOUR ANGLE (Personal Notes)")
	fmt.Fprintln(p.out)
	return p.multiline("Paste your personal notes.\n" +
		"Finish with a line containing only '::end::' (without quotes).")
}

// videoIDs collects the comma-separated YouTube video ID list. At least one
// non-blank ID is required.
func (p *prompter) videoIDs() ([]string, error) {
	fmt.Fprintln(p.out, "\n## STEP 4: YouTube Transcripts")
	fmt.Fprintln(p.out)

	raw, err := p.required("Enter all YouTube video IDs, separated by a comma: ")
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, errors.New("at least one video ID is required to proceed")
	}
	return ids, nil
}

// date re-prompts until the response parses as YYYY-MM-DD.
func (p *prompter) date(message string) (string, error) {
	for {
		resp, err := p.line(message)
		if err != nil {
			return "", err
		}
		if _, parseErr := time.Parse("2006-01-02", resp); parseErr == nil {
			return resp, nil
		}
		fmt.Fprintln(p.out, "Invalid date format. Please use YYYY-MM-DD.")
	}
}

// required re-prompts until the response is non-blank.
func (p *prompter) required(message string) (string, error) {
	for {
		resp, err := p.line(message)
		if err != nil {
			return "", err
		}
		if resp != "" {
			return resp, nil
		}
		fmt.Fprintln(p.out, "This field is required.")
	}
}

// yesNo re-prompts until a y/n answer arrives; a blank response takes the
// default.
func (p *prompter) yesNo(message string, def bool) (bool, error) {
	for {
		resp, err := p.line(message)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(resp) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer 'y' or 'n'.")
	}
}

// selectFrom shows a numbered menu and re-prompts until a valid index is
// chosen.
func (p *prompter) selectFrom(message string, options []string) (string, error) {
	fmt.Fprintln(p.out, message)
	for i, opt := range options {
		fmt.Fprintf(p.out, " %d) %s\n", i+1, opt)
	}
	for {
		resp, err := p.line("Enter the number of your choice: ")
		if err != nil {
			return "", err
		}
		if idx, convErr := strconv.Atoi(resp); convErr == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1], nil
		}
		fmt.Fprintln(p.out, "Invalid selection; enter the number corresponding to your choice.")
	}
}

// multiline reads lines until the terminator line or EOF. Blank content is
// an error so a stray ::end:: cannot produce an empty section.
func (p *prompter) multiline(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)

	var lines []string
	for {
		line, err := p.in.ReadString('\n')
		if strings.TrimSpace(strings.TrimRight(line, "\n")) == multilineTerminator {
			break
		}
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\n"))
		}
		if err != nil {
			break
		}
	}

	content := strings.TrimSpace(strings.Join(lines, "\n"))
	if content == "" {
		return "", errors.New("input cannot be empty; paste your text before typing ::end::")
	}
	return content, nil
}

// line reads one response, trimming surrounding whitespace. EOF with no
// pending input is an error: the flow cannot continue without an answer.
func (p *prompter) line(message string) (string, error) {
	fmt.Fprint(p.out, message)
	resp, err := p.in.ReadString('\n')
	if err != nil && resp == "" {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimSpace(resp), nil
}
