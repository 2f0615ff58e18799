package palette

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is the result of reloading a watched palette.
type Update struct {
	// Palette is the reloaded palette, nil if Err is set.
	Palette *Palette

	// Err is the load error.
	Err error
}

// Watch reloads the palette at path every time the file is written or
// replaced and sends the result on the returned channel. The channel is
// closed when ctx is done.
func Watch(ctx context.Context, path string) (<-chan Update, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("palette: watch %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("palette: watch %s: %w", path, err)
	}
	// Editors commonly replace the file instead of writing it, which drops a
	// watch on the file itself, so watch the directory.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("palette: watch %s: %w", path, err)
	}

	updates := make(chan Update, 1)
	go func() {
		defer close(updates)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				slog.Debug("palette changed", "path", path, "op", event.Op.String())

				var u Update
				u.Palette, u.Err = Load(path)
				select {
				case updates <- u:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				slog.Warn("palette watch error", "path", path, "error", err)
			}
		}
	}()
	return updates, nil
}
