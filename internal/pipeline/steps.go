package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/pcblab/pcbrepair/internal/container"
	"github.com/pcblab/pcbrepair/internal/interpreter"
	"github.com/pcblab/pcbrepair/internal/model"
	"github.com/pcblab/pcbrepair/internal/parser"
)

// DecodeStep decrypts and decompresses the raw container bytes on the
// report, and fingerprints the input for the board index.
type DecodeStep struct{}

// NewDecodeStep creates the decode step.
func NewDecodeStep() *DecodeStep {
	return &DecodeStep{}
}

// Name returns the step name.
func (s *DecodeStep) Name() string {
	return "decode"
}

// Do decodes report.Raw into the content and description payloads.
func (s *DecodeStep) Do(_ context.Context, report *model.BoardReport) error {
	if len(report.Raw) == 0 {
		return fmt.Errorf("no container bytes loaded for %s", report.File)
	}

	digest := sha3.Sum256(report.Raw)
	report.Digest = hex.EncodeToString(digest[:])

	decoded, err := container.Decode(report.Raw)
	if err != nil {
		return err
	}

	report.KeyVariant = decoded.KeyVariant
	report.ContentBytes = decoded.Content
	report.DescriptionBytes = decoded.Description

	return nil
}

// ParseStep parses both decoded payloads into typed records.
type ParseStep struct{}

// NewParseStep creates the parse step.
func NewParseStep() *ParseStep {
	return &ParseStep{}
}

// Name returns the step name.
func (s *ParseStep) Name() string {
	return "parse"
}

// Do parses the content and description payloads produced by the
// decode step.
func (s *ParseStep) Do(_ context.Context, report *model.BoardReport) error {
	content, err := parser.ParseContent(report.ContentBytes)
	if err != nil {
		return fmt.Errorf("content: %w", err)
	}
	report.Content = content

	description, err := parser.ParseDescription(report.DescriptionBytes)
	if err != nil {
		return fmt.Errorf("description: %w", err)
	}
	report.Description = description

	return nil
}

// InterpretStep derives centered, millimeter footprints from the
// parsed pin records.
type InterpretStep struct{}

// NewInterpretStep creates the interpret step.
func NewInterpretStep() *InterpretStep {
	return &InterpretStep{}
}

// Name returns the step name.
func (s *InterpretStep) Name() string {
	return "interpret"
}

// Do interprets the parsed content into footprints.
func (s *InterpretStep) Do(_ context.Context, report *model.BoardReport) error {
	if report.Content == nil {
		return fmt.Errorf("content not parsed for %s", report.File)
	}

	footprints, err := interpreter.Interpret(report.Content)
	if err != nil {
		return err
	}
	report.Footprints = footprints

	return nil
}
