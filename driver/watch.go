package driver

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Re-analyzes a file each time it is written or replaced, until ctx is
// done.  The watched directories are observed rather than the files
// themselves so editors that save by rename are still seen.  A file that
// can no longer be read is skipped until its next change.
func Watch(
	ctx context.Context,
	fileNames []string,
	onChange func(*Result),
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := map[string]string{} // cleaned path -> name as given
	dirs := map[string]struct{}{}
	for _, fileName := range fileNames {
		path, err := filepath.Abs(fileName)
		if err != nil {
			return err
		}
		watched[path] = fileName

		dir := filepath.Dir(path)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}

		err = watcher.Add(dir)
		if err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			path, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}

			fileName, ok := watched[path]
			if !ok {
				continue
			}

			result, err := AnalyzeFile(fileName)
			if err != nil {
				continue
			}
			onChange(result)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
