// Package content loads the static portfolio rendered by the TUI. Content is
// read once at startup; nothing here is written back.
package content

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tinytelemetry/folio/internal/model"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// Default returns the built-in portfolio.
func Default() (*model.Portfolio, error) {
	return decode(defaultYAML, "default.yml")
}

// Load reads a portfolio from path. An empty path yields the built-in
// portfolio. A directory is treated as a set of partial YAML files (one per
// section, say) that are parsed concurrently and merged in file-name order.
// The result is validated before it is returned.
func Load(ctx context.Context, path string) (*model.Portfolio, error) {
	var (
		p   *model.Portfolio
		err error
	)
	switch {
	case path == "":
		p, err = Default()
	default:
		var info os.FileInfo
		info, err = os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("content %s: %w", path, err)
		}
		if info.IsDir() {
			p, err = loadDir(ctx, path)
		} else {
			p, err = loadFile(path)
		}
	}
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", displayName(path), err)
	}
	return p, nil
}

func displayName(path string) string {
	if path == "" {
		return "default.yml"
	}
	return path
}

func loadFile(path string) (*model.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	return decode(data, path)
}

func decode(data []byte, name string) (*model.Portfolio, error) {
	var p model.Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return &p, nil
}

func loadDir(ctx context.Context, dir string) (*model.Portfolio, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("content dir %s: no .yml files", dir)
	}
	sort.Strings(files)

	parts := make([]*model.Portfolio, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := loadFile(f)
			if err != nil {
				return err
			}
			parts[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &model.Portfolio{}
	for _, p := range parts {
		merge(merged, p)
	}
	return merged, nil
}

// merge folds src into dst: list sections append, profile fields override
// when set.
func merge(dst, src *model.Portfolio) {
	mergeProfile(&dst.Profile, src.Profile)
	dst.Skills = append(dst.Skills, src.Skills...)
	dst.Timeline = append(dst.Timeline, src.Timeline...)
	dst.ProjectCategories = append(dst.ProjectCategories, src.ProjectCategories...)
	dst.Projects = append(dst.Projects, src.Projects...)
	dst.Services = append(dst.Services, src.Services...)
	dst.Certificates = append(dst.Certificates, src.Certificates...)
	dst.Testimonials = append(dst.Testimonials, src.Testimonials...)
	dst.Clients = append(dst.Clients, src.Clients...)
	dst.Posts = append(dst.Posts, src.Posts...)
	dst.Social = append(dst.Social, src.Social...)
}

func mergeProfile(dst *model.Profile, src model.Profile) {
	set := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	set(&dst.Name, src.Name)
	set(&dst.Greeting, src.Greeting)
	set(&dst.Tagline, src.Tagline)
	set(&dst.Bio, src.Bio)
	set(&dst.Email, src.Email)
	set(&dst.Phone, src.Phone)
	set(&dst.Location, src.Location)
	if len(src.Roles) > 0 {
		dst.Roles = append([]string(nil), src.Roles...)
	}
}
