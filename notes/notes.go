package notes

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"study_notes/generator"
)

const (
	OutputFile    = "structured_notes.md"
	documentTitle = "Study Notes"
)

// Generator turns a topics file into a Markdown study-notes document.
type Generator struct {
	agent   *generator.Agent
	verbose bool
	logger  *log.Logger
}

func New(agent *generator.Agent, verbose bool, logger *log.Logger) (*Generator, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{agent: agent, verbose: verbose, logger: logger}, nil
}

func (g *Generator) infof(format string, args ...interface{}) {
	if !g.verbose {
		return
	}
	g.logger.Printf("[INFO] "+format, args...)
}

// Generate reads one topic per line from topicsPath and writes a section per
// topic to outputPath, truncating it first. A topic whose query fails keeps
// its heading and gets no body; only file errors and cancellation abort the run.
func (g *Generator) Generate(ctx context.Context, topicsPath, outputPath string) (rep *Report, err error) {
	in, err := os.Open(topicsPath)
	if err != nil {
		return nil, fmt.Errorf("open topics file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create markdown file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close markdown file: %w", cerr)
		}
	}()

	rep = &Report{StartedAt: time.Now()}
	if _, err := fmt.Fprintf(out, "# %s\n\n", documentTitle); err != nil {
		return rep, fmt.Errorf("write markdown file: %w", err)
	}

	r := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return rep, fmt.Errorf("read topics file: %w", readErr)
		}
		if line != "" {
			if err := g.writeTopic(ctx, out, rep, line); err != nil {
				return rep, err
			}
		}
		if readErr != nil {
			break
		}
	}

	g.infof("Wrote %d topics to %s (%d with content)", rep.Topics(), outputPath, rep.Succeeded())
	return rep, nil
}

func (g *Generator) writeTopic(ctx context.Context, out io.Writer, rep *Report, line string) error {
	topic := trimTopic(line)
	if strings.TrimSpace(topic) == "" {
		g.infof("Skipping blank line")
		return nil
	}
	if _, err := fmt.Fprintf(out, "## %s\n\n", topic); err != nil {
		return fmt.Errorf("write markdown file: %w", err)
	}

	start := time.Now()
	content, err := g.agent.Explain(ctx, topic)
	o := Outcome{Topic: topic, Err: err, Duration: time.Since(start)}
	if err != nil {
		g.logger.Printf("[topic] %q: %v", topic, err)
		rep.add(o)
		return nil
	}
	g.infof("Topic %q answered in %s", topic, o.Duration.Round(time.Millisecond))

	o.HasContent = true
	rep.add(o)
	if _, err := fmt.Fprintf(out, "%s\n\n", content); err != nil {
		return fmt.Errorf("write markdown file: %w", err)
	}
	return nil
}

// trimTopic drops the line terminator, nothing else.
func trimTopic(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
