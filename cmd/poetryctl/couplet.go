package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sindhipoetry/backend/internal/domain"
	"github.com/sindhipoetry/backend/internal/workflow"
)

type createOptions struct {
	text           string
	file           string
	poet           string
	slug           string
	english        string
	tags           []string
	roman          []string
	allowPending   bool
	requireEnglish bool
}

func newCoupletCmd(c *cli) *cobra.Command {
	couplet := &cobra.Command{
		Use:   "couplet",
		Short: "Author couplets",
	}

	var opts createOptions
	create := &cobra.Command{
		Use:   "create",
		Short: "Run the authoring workflow for one couplet",
		Long: `Runs the couplet workflow non-interactively:

  1. spelling check (corrections are applied automatically)
  2. romanization, adding every --roman word=roman pair to the dictionary
  3. details: poet, slug, tags and English translation
  4. submit, one record per language

The slug and the English draft are generated from the text unless given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.createCouplet(cmd, opts)
		},
	}

	f := create.Flags()
	f.StringVar(&opts.text, "text", "", "Sindhi couplet text")
	f.StringVarP(&opts.file, "file", "f", "", "read the couplet text from a file (- for stdin)")
	f.StringVar(&opts.poet, "poet", "", "poet slug or ID")
	f.StringVar(&opts.slug, "slug", "", "couplet slug (default: generated from the first line)")
	f.StringVar(&opts.english, "english", "", "English translation (default: machine translation)")
	f.StringSliceVar(&opts.tags, "tag", nil, "tag slug, repeatable or comma-separated")
	f.StringArrayVar(&opts.roman, "roman", nil, "dictionary entry as word=roman, repeatable")
	f.BoolVar(&opts.allowPending, "allow-pending", false, "submit even if some words are missing from the dictionary")
	f.BoolVar(&opts.requireEnglish, "require-english", false, "undo the Sindhi record when the English one fails")
	create.MarkFlagsMutuallyExclusive("text", "file")
	_ = create.MarkFlagRequired("poet")

	couplet.AddCommand(create)
	return couplet
}

func (c *cli) createCouplet(cmd *cobra.Command, opts createOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	text, err := readText(cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}
	manual, err := parseRoman(opts.roman)
	if err != nil {
		return err
	}

	w := workflow.New(workflow.Deps{
		Corrector:  c.client,
		Romanizer:  c.client,
		Translator: c.client,
		Dictionary: c.client,
		Couplets:   c.client,
		Catalogue:  c.client,
	}, workflow.Options{
		CallTimeout:    c.cfg.API.Timeout,
		RedirectDelay:  c.cfg.Workflow.RedirectDelay,
		RequireEnglish: c.cfg.Workflow.RequireEnglish || opts.requireEnglish,
	}, c.log)

	// step runs one workflow action and prints the notices it raised.
	step := func(err error) error {
		for _, n := range w.DrainNotices() {
			fmt.Fprintln(out, n)
		}
		return err
	}

	if err := step(w.Start(ctx)); err != nil {
		return err
	}
	poetID, err := resolvePoet(w.Catalog().Poets, opts.poet)
	if err != nil {
		return err
	}

	// Hesudhar
	if err := step(w.SetText(text)); err != nil {
		return err
	}
	if err := step(w.CheckSpelling(ctx)); err != nil {
		return err
	}

	// Romanizer
	if err := step(w.GoToRomanizer(ctx)); err != nil {
		return err
	}
	if err := step(w.CheckRomanization(ctx)); err != nil {
		return err
	}
	for _, m := range manual {
		if err := step(w.AddManualRomanization(ctx, m.SindhiWord, m.RomanWord)); err != nil {
			return err
		}
	}
	if pending := w.Snapshot().Pending; len(pending) > 0 && !opts.allowPending {
		return fmt.Errorf("%d words are not in the dictionary: %s (add them with --roman word=roman or pass --allow-pending)",
			len(pending), strings.Join(pending, ", "))
	}

	// Details
	if err := step(w.GoToDetails(ctx)); err != nil {
		return err
	}
	if err := w.SelectPoet(poetID); err != nil {
		return err
	}
	if opts.slug != "" {
		if err := w.SetSlug(opts.slug); err != nil {
			return err
		}
	}
	if opts.english != "" {
		if err := w.SetEnglishDraft(opts.english); err != nil {
			return err
		}
	}
	if err := w.SetTags(opts.tags); err != nil {
		return err
	}

	res, err := w.Submit(ctx)
	if err := step(err); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors {
				fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
			}
		}
		return err
	}

	fmt.Fprintf(out, "Created couplet %d (%s)\n", res.Sindhi.ID, res.Sindhi.Slug)
	if res.English != nil {
		fmt.Fprintf(out, "Created English couplet %d\n", res.English.ID)
	}
	return nil
}

func readText(stdin io.Reader, opts createOptions) (string, error) {
	switch {
	case opts.text != "":
		return opts.text, nil
	case opts.file == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	case opts.file != "":
		b, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("read couplet file: %w", err)
		}
		return string(b), nil
	default:
		return "", errors.New("one of --text or --file is required")
	}
}

func parseRoman(pairs []string) ([]domain.RomanMapping, error) {
	out := make([]domain.RomanMapping, 0, len(pairs))
	for _, p := range pairs {
		word, roman, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(word) == "" || strings.TrimSpace(roman) == "" {
			return nil, fmt.Errorf("invalid --roman %q: want word=roman", p)
		}
		out = append(out, domain.RomanMapping{SindhiWord: word, RomanWord: roman})
	}
	return out, nil
}

// resolvePoet accepts a numeric ID or a slug from the loaded catalogue.
func resolvePoet(poets []domain.Poet, ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	for _, p := range poets {
		if p.Slug == ref || strconv.FormatInt(p.ID, 10) == ref {
			return p.ID, nil
		}
	}
	return 0, fmt.Errorf("unknown poet %q: %w", ref, domain.ErrNotFound)
}
