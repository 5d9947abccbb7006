package project

import (
	"encoding/json"
	"fmt"
)

// Edition is the language edition a crate is compiled under. The zero value
// is Edition2021, which is also the wire default when the field is absent.
type Edition int

const (
	Edition2021 Edition = iota
	Edition2015
	Edition2018
)

var editionNames = map[Edition]string{
	Edition2015: "2015",
	Edition2018: "2018",
	Edition2021: "2021",
}

func (e Edition) String() string {
	if name, ok := editionNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Edition(%d)", int(e))
}

func (e Edition) MarshalJSON() ([]byte, error) {
	name, ok := editionNames[e]
	if !ok {
		return nil, fmt.Errorf("unknown edition %d", int(e))
	}
	return json.Marshal(name)
}

func (e *Edition) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for edition, name := range editionNames {
		if name == s {
			*e = edition
			return nil
		}
	}
	return fmt.Errorf("unknown edition %q", s)
}

// TargetKind classifies a build target. The zero value is TargetKindBin,
// matching the wire default.
type TargetKind int

const (
	TargetKindBin TargetKind = iota
	// TargetKindLib covers every Cargo lib crate-type (rlib, dylib,
	// proc-macro, ...).
	TargetKindLib
	TargetKindExample
	TargetKindTest
	TargetKindBench
	TargetKindBuildScript
	TargetKindOther
)

var targetKindNames = map[TargetKind]string{
	TargetKindBin:         "bin",
	TargetKindLib:         "lib",
	TargetKindExample:     "example",
	TargetKindTest:        "test",
	TargetKindBench:       "bench",
	TargetKindBuildScript: "buildScript",
	TargetKindOther:       "other",
}

func (k TargetKind) String() string {
	if name, ok := targetKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TargetKind(%d)", int(k))
}

func (k TargetKind) MarshalJSON() ([]byte, error) {
	name, ok := targetKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown target kind %d", int(k))
	}
	return json.Marshal(name)
}

func (k *TargetKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range targetKindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown target kind %q", s)
}

// RunnableKind says what a runnable does when invoked.
type RunnableKind int

const (
	RunnableCheck RunnableKind = iota
	// RunnableFlycheck is a lint-only check, run on save by editors.
	RunnableFlycheck
	RunnableRun
	RunnableTestOne
)

var runnableKindNames = map[RunnableKind]string{
	RunnableCheck:    "check",
	RunnableFlycheck: "flycheck",
	RunnableRun:      "run",
	RunnableTestOne:  "testOne",
}

func (k RunnableKind) String() string {
	if name, ok := runnableKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("RunnableKind(%d)", int(k))
}

func (k RunnableKind) MarshalJSON() ([]byte, error) {
	name, ok := runnableKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown runnable kind %d", int(k))
	}
	return json.Marshal(name)
}

func (k *RunnableKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for kind, name := range runnableKindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown runnable kind %q", s)
}
