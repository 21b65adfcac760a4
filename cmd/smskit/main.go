// Command smskit counts, sanitizes and truncates SMS text.
//
// Usage:
//
//	smskit [flags] [text...]
//	echo "Hello ☃" | smskit -sanitize -replace '?'
//	smskit -template 'Hi {{name}}, code {{code}}' -var name=Zoë -var code=4829
//
// The message is taken from the arguments, or from stdin when there are
// none. Settings are read from SMSKIT_* environment variables (and a .env
// file), then the -policy file, then flags. The outcome is printed as JSON.
//
// -replace has no effect unless sanitizing is on, and -suffix and -word
// none unless a budget is set; smskit warns when that happens.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/randalmurphal/smskit/policy"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "smskit:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("smskit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		budget     = fs.Int("budget", 0, "Maximum segments; 0 disables truncation.")
		sanitizeOn = fs.Bool("sanitize", false, "Rewrite text into the GSM 7-bit repertoire.")
		replace    = fs.String("replace", "", "Replacement for characters that cannot be sanitized. Needs -sanitize.")
		word       = fs.Bool("word", false, "Truncate at a word boundary. Needs -budget.")
		suffix     = fs.String("suffix", "", "Suffix appended to truncated text. Needs -budget.")
		tmpl       = fs.String("template", "", "Message template rendered with -var values instead of text arguments.")
		policyPath = fs.String("policy", "", "Policy file (.yaml, .toml or .json).")
		envPath    = fs.String("env", "", "Env file to load instead of ./.env.")
		schema     = fs.Bool("schema", false, "Print the policy file JSON schema and exit.")
		verbose    = fs.Bool("v", false, "Log debug output to stderr.")
	)
	vars := map[string]any{}
	fs.Func("var", "Template variable as name=value; repeatable.", func(v string) error {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return fmt.Errorf("want name=value, got %q", v)
		}
		vars[name] = value
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *schema {
		data, err := policy.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	if err := loadEnv(logger, *envPath); err != nil {
		return err
	}

	p := policy.FromEnv()
	if *policyPath != "" {
		loaded, err := policy.Load(*policyPath)
		if err != nil {
			return err
		}
		p = loaded
		// The environment still overrides the file.
		p.LoadFromEnv()
		logger.Debug("loaded policy", slog.String("path", *policyPath))
	}

	// Only flags given on the command line override the policy.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "budget":
			p.MaxSegments = *budget
		case "sanitize":
			p.Sanitize = *sanitizeOn
		case "replace":
			p.Replacement = *replace
		case "word":
			p.WordBoundary = *word
		case "suffix":
			p.Suffix = *suffix
		}
	})

	warnIneffective(logger, p)

	var (
		out policy.Outcome
		err error
	)
	if *tmpl != "" {
		if fs.NArg() > 0 {
			return errors.New("-template cannot be combined with text arguments")
		}
		out, err = p.ApplyTemplate(*tmpl, vars)
	} else {
		var text string
		text, err = readText(fs.Args(), stdin)
		if err != nil {
			return err
		}
		out, err = p.Apply(text)
	}
	if err != nil {
		return err
	}
	logger.Debug("applied policy",
		slog.Int("messages", out.Result.Messages),
		slog.Bool("sanitized", out.Sanitized),
		slog.Bool("truncated", out.Truncated))

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// warnIneffective flags settings that the rest of the policy switches off.
func warnIneffective(logger *slog.Logger, p policy.Policy) {
	if p.Replacement != "" && !p.Sanitize {
		logger.Warn("replacement has no effect without sanitize",
			slog.String("replacement", p.Replacement))
	}
	if p.MaxSegments == 0 {
		if p.Suffix != "" {
			logger.Warn("suffix has no effect without a segment budget",
				slog.String("suffix", p.Suffix))
		}
		if p.WordBoundary {
			logger.Warn("word boundary has no effect without a segment budget")
		}
	}
}

// readText joins args with spaces, or reads stdin without its final line
// break when there are no args.
func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
