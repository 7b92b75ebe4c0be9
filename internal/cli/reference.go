package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkordes/travel-journal/internal/export"
)

func categoryList(ctx context.Context, a *App, args []string) error {
	if err := parse(a.flags("category list"), args); err != nil {
		return err
	}
	cats, err := a.svc.Reference.Categories(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		fmt.Fprintln(a.out, "⚠ No categories found.")
		return nil
	}
	for _, c := range cats {
		fmt.Fprintf(a.out, "%s. %s\n", c.ID, c.Name)
	}
	return nil
}

func tagList(ctx context.Context, a *App, args []string) error {
	if err := parse(a.flags("tag list"), args); err != nil {
		return err
	}
	tags, err := a.svc.Reference.Tags(ctx)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(a.out, "⚠ No tags found.")
		return nil
	}
	for _, t := range tags {
		fmt.Fprintf(a.out, "%s. %s\n", t.ID, t.Name)
	}
	return nil
}

func exportCmd(ctx context.Context, a *App, args []string) error {
	fs := a.flags("export")
	rawFormat := fs.String("format", string(export.FormatCSV), "csv or yaml")
	path := fs.String("o", "", "write to this file instead of stdout")
	if err := parse(fs, args); err != nil {
		return err
	}
	format, err := export.ParseFormat(*rawFormat)
	if err != nil {
		return err
	}

	rows, err := a.svc.Export.Export(ctx)
	if err != nil {
		return err
	}

	if *path == "" {
		return export.Write(a.out, format, rows)
	}
	err = export.WriteFile(*path, func(w io.Writer) error {
		return export.Write(w, format, rows)
	})
	if err != nil {
		return fmt.Errorf("cli.export: %w", err)
	}
	fmt.Fprintf(a.out, "✅ Exported %d rows to %s\n", len(rows), *path)
	return nil
}

func seedCmd(ctx context.Context, a *App, args []string) error {
	if err := parse(a.flags("seed"), args); err != nil {
		return err
	}
	trip, err := a.svc.Seed.Seed(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✅ Seeding complete! Trip '%s' ID: %s\n", trip.Name, trip.ID)
	return nil
}
