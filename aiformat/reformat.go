// Package aiformat reformats assembled recap documents with an OpenAI
// completion model, one bounded chunk at a time.
package aiformat

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"showlog/config"
)

// completionTokenCap bounds the completion length for every chunk request.
const completionTokenCap = 4096

const systemPrompt = "You are an assistant that only formats the provided text. " +
	"Do not rewrite, change, or omit any words or punctuation. " +
	"Only adjust spacing, line breaks, and add clear headers while keeping all content identical. " +
	"Output ONLY the formatted text - no explanations, no notes."

const userInstructions = "Input is a wrestling recap document with sections such as a date header, " +
	"play-by-play text, personal notes, and raw transcript blocks. " +
	"Please format the document as follows:\n" +
	" - Keep all text exactly as-is; DO NOT change sentence meaning or wording.\n" +
	" - Keep the title/header (line like `YYYY-MM-DD | PROMOTION | SHOW`) at the very top, preserved.\n" +
	" - Convert section markers `--- ... ---` into clearly labeled bold uppercase section headers, " +
	"separated by a single blank line. For example, `--- PLAY BY PLAY ANALYSIS ---` becomes `*** PLAY BY PLAY ANALYSIS ***`.\n" +
	" - Ensure that the Play-by-Play and Your Angle sections are separated by blank lines and retain paragraph breaks.\n" +
	" - For each transcript: add a single-line header like `VIDEO TRANSCRIPT: <video_id>` and then put the " +
	"transcript content in a quoted block (preserve line breaks).\n" +
	" - After formatting, provide a short transcript summary but keep it in the same place.\n" +
	" - Output must be plain text without code fences or markdown headings other than plaintext bold-like " +
	"markers (e.g., `*** HEADER ***`).\n" +
	" - Preserve the order and all characters of the content.\n" +
	"Now format the following document exactly as requested.\n\n"

// CompletionClient is the subset of the OpenAI client used by the reformatter.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Reformatter runs the chunked formatting pass over a document.
//
// Chunks are submitted strictly sequentially, one completion call in flight
// at a time, so output order matches chunk order. Unlike transcript
// fetching there is no per-unit fault isolation here: one failed chunk
// fails the whole document, and the caller falls back to unformatted text.
type Reformatter struct {
	// Client issues completion calls. Required.
	Client CompletionClient

	// Model is the completion model identifier.
	Model string

	// MaxChunkChars bounds the size of a single chunk.
	MaxChunkChars int

	// MaxDocumentChars is the absolute input ceiling, checked before any
	// network call.
	MaxDocumentChars int

	log *logrus.Logger
}

// New builds a reformatter from application configuration. It fails when no
// API credential is configured.
func New(cfg *config.Config, log *logrus.Logger) (*Reformatter, error) {
	if cfg.OpenAIKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable not set")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reformatter{
		Client:           openai.NewClient(cfg.OpenAIKey),
		Model:            cfg.OpenAIModel,
		MaxChunkChars:    cfg.MaxChunkChars,
		MaxDocumentChars: cfg.MaxDocumentChars,
		log:              log,
	}, nil
}

// Reformat formats the document while preserving its words. On any chunk
// failure the whole pass fails with a single wrapped error; partial output
// is never returned.
func (r *Reformatter) Reformat(ctx context.Context, document string) (string, error) {
	if r.Client == nil {
		return "", errors.New("completion client not configured")
	}
	if len(document) > r.MaxDocumentChars {
		return "", errors.Errorf(
			"document too large for AI formatting (%d chars); shorten or skip AI formatting", len(document))
	}

	chunks := SplitChunks(document, r.MaxChunkChars)
	if len(chunks) == 0 {
		return "", nil
	}

	formatted := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		text, err := r.formatChunk(ctx, chunk, i+1, len(chunks))
		if err != nil {
			return "", errors.Wrap(err, "ai formatting failed")
		}
		formatted = append(formatted, text)
	}
	return strings.Join(formatted, "\n"), nil
}

// formatChunk issues one completion call and normalizes its response.
// Empty model output falls back to the original chunk text, so the
// formatting pass can never erase content.
func (r *Reformatter) formatChunk(ctx context.Context, chunk string, index, total int) (string, error) {
	prompt := fmt.Sprintf("%s(Chunk %d/%d)\n\n%s", userInstructions, index, total, chunk)
	req := openai.ChatCompletionRequest{
		Model: r.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		N: 1,
	}
	applyModelParams(&req)

	resp, err := r.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	text := contentText(resp.Choices[0].Message)
	if strings.TrimSpace(text) == "" {
		if r.log != nil {
			r.log.WithFields(logrus.Fields{
				"chunk": index,
				"total": total,
			}).Warn("empty formatted content, keeping original chunk text")
		}
		return chunk, nil
	}
	return text, nil
}

// paramFamily selects completion parameters for one family of models. The
// API renamed the completion cap between model generations, so the choice
// is a prefix test on the model identifier.
type paramFamily struct {
	matches func(model string) bool
	apply   func(req *openai.ChatCompletionRequest)
}

var paramFamilies = []paramFamily{
	{
		matches: func(model string) bool { return strings.HasPrefix(model, "gpt-5") },
		apply: func(req *openai.ChatCompletionRequest) {
			req.MaxCompletionTokens = completionTokenCap
		},
	},
}

// applyModelParams sets the model-dependent completion parameters on req.
// Models outside every known family get the legacy cap plus deterministic
// sampling.
func applyModelParams(req *openai.ChatCompletionRequest) {
	for _, family := range paramFamilies {
		if family.matches(req.Model) {
			family.apply(req)
			return
		}
	}
	req.MaxTokens = completionTokenCap
	// go-openai drops a literal zero from the payload; the smallest
	// positive float is the documented way to pin temperature to zero.
	req.Temperature = math.SmallestNonzeroFloat32
}

// contentText normalizes the two content shapes the API returns: a plain
// string, or a sequence of typed parts whose text fields are concatenated
// in order.
func contentText(msg openai.ChatCompletionMessage) string {
	if msg.Content != "" {
		return msg.Content
	}
	var sb strings.Builder
	for _, part := range msg.MultiContent {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
