package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

func (s *fileSchema) validate() error {
	var result *multierror.Error

	switch {
	case s.HandledWorkspaces == nil:
		result = multierror.Append(result, errors.New("missing key handled_workspaces"))
	case len(s.HandledWorkspaces) == 0:
		result = multierror.Append(result, errors.New("handled_workspaces must name at least one workspace"))
	}
	for i, name := range s.HandledWorkspaces {
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("handled_workspaces[%d] is empty", i))
		}
	}

	if s.Window == nil {
		result = multierror.Append(result, errors.New("missing table window"))
		return result.ErrorOrNil()
	}

	if size := s.Window.Size; size == nil {
		result = multierror.Append(result, errors.New("missing table window.size"))
	} else {
		result = multierror.Append(result, positive("window.size.width", size.Width))
		result = multierror.Append(result, positive("window.size.height", size.Height))
	}

	if pos := s.Window.Position; pos == nil {
		result = multierror.Append(result, errors.New("missing table window.position"))
	} else {
		if pos.X == nil {
			result = multierror.Append(result, errors.New("missing key window.position.x"))
		}
		if pos.Y == nil {
			result = multierror.Append(result, errors.New("missing key window.position.y"))
		}
	}

	return result.ErrorOrNil()
}

func positive(key string, v *int) error {
	if v == nil {
		return fmt.Errorf("missing key %s", key)
	}
	if *v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", key, *v)
	}
	return nil
}
