package cmd

import (
	"context"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/parallel"
	"taskman/internal/query"
	"taskman/internal/store"
)

// doctorCommand checks config, store connectivity, and the validity of
// every stored document against the task schema.
func doctorCommand(ctx context.Context, cfg *config.Config, w io.Writer) error {
	fmt.Fprintln(w, "Taskman Doctor")
	fmt.Fprintln(w, "==============")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config:")
	fmt.Fprintf(w, "  Mongo URI:  %s\n", cfg.MongoURI)
	fmt.Fprintf(w, "  Database:   %s\n", cfg.Database)
	fmt.Fprintf(w, "  Collection: %s\n", cfg.Collection)
	fmt.Fprintf(w, "  Timeouts:   connect %s, op %s\n", cfg.ConnectTimeout(), cfg.OpTimeout())
	fmt.Fprintln(w)

	allOK := true

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	st, err := store.OpenMongo(connectCtx, cfg.MongoURI, cfg.Database, cfg.Collection)
	cancel()
	if err != nil {
		fmt.Fprintf(w, "[FAIL] store connection: %v\n", err)
		return fmt.Errorf("doctor found problems")
	}
	fmt.Fprintln(w, "[ OK ] store connection")
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.OpTimeout())
		defer cancel()
		_ = st.Close(closeCtx)
	}()

	opCtx, cancel := context.WithTimeout(ctx, cfg.OpTimeout())
	tasks, err := st.Find(opCtx, &query.Query{SortOrder: query.OrderDesc})
	cancel()
	if err != nil {
		fmt.Fprintf(w, "[FAIL] read collection: %v\n", err)
		return fmt.Errorf("doctor found problems")
	}
	fmt.Fprintf(w, "[ OK ] read collection (%d tasks)\n", len(tasks))

	pool := parallel.New(ctx, 8, false)
	for i := range tasks {
		t := &tasks[i]
		pool.Submit(t.ID.Hex(), t.ValidateDocument)
	}
	results, _ := pool.Wait()
	invalid := 0
	for _, r := range results {
		if r.Err != nil {
			invalid++
			fmt.Fprintf(w, "[FAIL] %v\n", r.Err)
		}
	}
	if invalid > 0 {
		allOK = false
	} else {
		fmt.Fprintln(w, "[ OK ] all documents match the task schema")
	}

	fmt.Fprintln(w)
	if !allOK {
		fmt.Fprintf(w, "%d invalid document(s) found.\n", invalid)
		return fmt.Errorf("doctor found problems")
	}
	fmt.Fprintln(w, "All checks passed.")
	return nil
}
