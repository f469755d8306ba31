package main

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/dracfetch/cache"
	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/display/render"
	"gitlab.com/tinyland/lab/dracfetch/internal/format"
)

// writeDoctor reports which readouts failed and why, plugins without data,
// the cache contents and what the terminal can display. store may be nil.
func writeDoctor(w io.Writer, info *sysinfo.Info, plugins map[string]config.Plugin, store *cache.Store, term render.Terminal) error {
	var b strings.Builder
	b.WriteString("Doctor Report:\n")
	b.WriteString("==============\n\n")
	b.WriteString("Core System Readouts:\n")
	b.WriteString("---------------------\n")

	failed := info.Failed()
	if len(failed) == 0 {
		fmt.Fprintf(&b, "  ✓ All %d core readouts were successful!\n", len(info.Readouts))
	} else {
		fmt.Fprintf(&b, "  Out of %d core readouts, %d failed.\n\n", len(info.Readouts), len(failed))
		for _, r := range failed {
			fmt.Fprintf(&b, "  ✗ %q failed: %v\n", r.Field, r.Err)
		}
	}

	if len(plugins) > 0 {
		ids := slices.Sorted(maps.Keys(plugins))
		var empty []string
		for _, id := range ids {
			if p := plugins[id]; p.Value == "" && len(p.Fields) == 0 {
				empty = append(empty, id)
			}
		}

		b.WriteString("\nPlugin Readouts:\n")
		b.WriteString("----------------\n")
		if len(empty) == 0 {
			fmt.Fprintf(&b, "  ✓ All %d plugin readouts were successful!\n", len(ids))
		} else {
			fmt.Fprintf(&b, "  Out of %d plugin readouts, %d failed.\n\n", len(ids), len(empty))
			for _, id := range empty {
				fmt.Fprintf(&b, "  ✗ Plugin %q has no value or fields\n", id)
			}
		}
	}

	b.WriteString("\nCache:\n")
	b.WriteString("------\n")
	if err := writeCacheReport(&b, store); err != nil {
		return err
	}

	b.WriteString("\nTerminal:\n")
	b.WriteString("---------\n")
	b.WriteString(render.Diagnose(term).String())

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCacheReport(b *strings.Builder, store *cache.Store) error {
	if store == nil {
		b.WriteString("  disabled\n")
		return nil
	}
	fmt.Fprintf(b, "  dir: %s\n", store.Dir())

	meta, err := store.Meta()
	if err != nil {
		return err
	}
	if len(meta.LastUpdate) == 0 {
		b.WriteString("  (empty)\n")
		return nil
	}
	keys := slices.Sorted(maps.Keys(meta.LastUpdate))
	keyW := 0
	for _, k := range keys {
		keyW = max(keyW, len(k))
	}
	for _, k := range keys {
		fmt.Fprintf(b, "  %-*s %8s  %s\n", keyW, k, format.Bytes(uint64(meta.Sizes[k])), format.FormatTimeSince(meta.LastUpdate[k]))
	}
	return nil
}

// writeBenchmark lists every readout slowest first. Readouts run
// concurrently, so the wall time is usually well below the sum.
func writeBenchmark(w io.Writer, info *sysinfo.Info, wall time.Duration) error {
	readouts := slices.Clone(info.Readouts)
	slices.SortStableFunc(readouts, func(a, b sysinfo.Readout) int {
		return cmp.Compare(b.Duration, a.Duration)
	})

	nameW := 0
	for _, r := range readouts {
		nameW = max(nameW, len(r.Field))
	}

	var b strings.Builder
	b.WriteString("Benchmark Results:\n")
	b.WriteString("==================\n\n")

	var total time.Duration
	for _, r := range readouts {
		status := "✓"
		if !r.OK() {
			status = "✗"
		}
		suffix := ""
		if r.Cached {
			suffix = " (cached)"
		}
		fmt.Fprintf(&b, "  %s %-*s %10s%s\n", status, nameW, r.Field, format.Millis(r.Duration), suffix)
		total += r.Duration
	}

	fmt.Fprintf(&b, "\n  Total: %10s (%d data sources)\n", format.Millis(total), len(readouts))
	fmt.Fprintf(&b, "  Wall:  %10s\n", format.Millis(wall))

	_, err := io.WriteString(w, b.String())
	return err
}
