package billdoc

import (
	"fmt"
	"strings"
)

// ValidationError lists the structural problems that keep a document from
// rendering. Callers can match it with errors.As to tell bad input apart
// from downstream failures.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed:\n  " + strings.Join(e.Problems, "\n  ")
}

// Validate checks the document for structural issues and returns an error
// describing all problems found, or nil if the document can be rendered.
func (d *Document) Validate() error {
	var errs []string

	switch d.Type {
	case BLOriginal, BLDraft, BLSeaway:
	default:
		errs = append(errs, fmt.Sprintf("unknown BL type %q", d.Type))
	}
	if d.CopyNumber < CopyFirstOriginal || d.CopyNumber > CopyThird {
		errs = append(errs, fmt.Sprintf("copy number %d out of range 0-2", d.CopyNumber))
	}
	if d.BLNumber == "" {
		errs = append(errs, "document number is empty")
	}

	for i, ctr := range d.FormContainers {
		if ctr.ContainerNumber == "" && (ctr.SealNumber != "" || ctr.GrossWt != "" || ctr.NetWt != "") {
			errs = append(errs, fmt.Sprintf("form container %d: details without a container number", i+1))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Problems: errs}
}
