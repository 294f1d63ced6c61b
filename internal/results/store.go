package results

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/zhulik/wildkmp/internal/core"
	"github.com/zhulik/wildkmp/pkg/atomicwriter"
	"github.com/zhulik/wildkmp/pkg/iter"
	"github.com/zhulik/wildkmp/pkg/series"
	"github.com/zhulik/wildkmp/pkg/wld"
	"github.com/zhulik/wildkmp/pkg/yaml"
)

type Run struct {
	ID        string    `yaml:"id"`
	StartedAt time.Time `yaml:"started_at"`
	Files     []string  `yaml:"files"`
}

type Manifest struct {
	Runs []Run `yaml:"runs"`
}

// Store keeps sweep results under RESULTS_PATH, one folder per run, and a
// manifest listing the runs.
type Store struct {
	Config   *core.Config
	Locker   core.Locker
	Uploader core.Uploader
	Logger   *slog.Logger

	writer *atomicwriter.AtomicWriter
}

func (s *Store) Init(_ context.Context) error {
	err := os.MkdirAll(s.tmpPath(), 0755)
	if err != nil {
		return fmt.Errorf("%w: unable to prepare RESULTS_PATH: %w", core.ErrInvalidConfig, err)
	}

	s.writer = atomicwriter.New(s.Locker, s.tmpPath())

	return nil
}

func (s *Store) StartRun(_ context.Context) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	err := os.Mkdir(s.runPath(run.ID), 0755)
	if err != nil {
		return nil, err
	}

	return run, nil
}

// Save writes one result file of run and hands it to the uploader.
func (s *Store) Save(ctx context.Context, run *Run, filename string, all []series.Series) error {
	name := path.Join(run.ID, filename)
	if err := core.ValidateResultName(name); err != nil {
		return err
	}

	fullPath := filepath.Join(s.Config.ResultsPath, filepath.FromSlash(name))

	err := s.writer.WriteFile(ctx, fullPath, series.Encode(all))
	if err != nil {
		return err
	}

	err = s.Uploader.Upload(ctx, name, fullPath)
	if err != nil {
		return err
	}

	run.Files = append(run.Files, filename)
	s.Logger.Debug("result saved", "name", name)

	return nil
}

// Finish records run in the manifest.
func (s *Store) Finish(ctx context.Context, run *Run) error {
	return s.writer.ReadWrite(ctx, s.manifestPath(), func(_ context.Context, content []byte) ([]byte, error) {
		manifest, err := yaml.Unmarshal[Manifest](content)
		if err != nil {
			return nil, err
		}

		manifest.Runs = append(manifest.Runs, *run)

		return yaml.Marshal(manifest)
	})
}

func (s *Store) Runs(_ context.Context) ([]Run, error) {
	content, err := os.ReadFile(s.manifestPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	manifest, err := yaml.Unmarshal[Manifest](content)
	if err != nil {
		return nil, err
	}

	return manifest.Runs, nil
}

// List returns "<run-id>/<file>" names of result files whose file name matches
// glob, sorted.
func (s *Store) List(_ context.Context, glob string) ([]string, error) {
	runs, err := os.ReadDir(s.Config.ResultsPath)
	if err != nil {
		return nil, err
	}

	var names []string

	for _, run := range runs {
		if !run.IsDir() || run.Name() == core.TmpFolder {
			continue
		}

		entries, err := os.ReadDir(s.runPath(run.Name()))
		if err != nil {
			return nil, err
		}

		matched, err := iter.ErrFilterMap(entries, func(e fs.DirEntry) (string, bool, error) {
			ok := !e.IsDir() && filepath.Ext(e.Name()) == core.ResultExtension && wld.Match(glob, e.Name())

			return path.Join(run.Name(), e.Name()), ok, nil
		})
		if err != nil {
			return nil, err
		}

		names = append(names, matched...)
	}

	slices.Sort(names)

	return names, nil
}

func (s *Store) Load(_ context.Context, name string) ([]series.Series, error) {
	if err := core.ValidateResultName(name); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(s.Config.ResultsPath, filepath.FromSlash(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", core.ErrResultNotFound, name)
	}

	if err != nil {
		return nil, err
	}

	return series.Decode(content)
}

func (s *Store) tmpPath() string {
	return filepath.Join(s.Config.ResultsPath, core.TmpFolder)
}

func (s *Store) runPath(id string) string {
	return filepath.Join(s.Config.ResultsPath, id)
}

func (s *Store) manifestPath() string {
	return filepath.Join(s.Config.ResultsPath, core.ManifestFilename)
}
