// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container runs command-line PDF tools inside a docker or podman
// container so that hosts without those tools installed can still extract
// text.
package container

import (
	"fmt"
	"io"
	"os/exec"
)

// Runtime is a container engine able to check for an image and run a
// one-shot container that reads stdin and writes stdout.
type Runtime interface {
	// Name returns the engine binary ("docker" or "podman").
	Name() string

	// Available reports whether the engine is on PATH and answers "info".
	Available() bool

	// ImageExists returns nil when image is present locally.
	ImageExists(image string) error

	// Run starts image with args appended to the entrypoint, wiring stdin and
	// stdout. The container is removed when it exits.
	Run(image string, args []string, stdin io.Reader, stdout io.Writer) error
}

// executor abstracts os/exec so engines can be faked in tests.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) { return exec.LookPath(file) }

func (osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// engine implements Runtime. docker and podman differ only in the binary and
// in how an image lookup is spelled.
type engine struct {
	bin       string
	imageArgs []string
	exec      executor
}

// engines lists the supported engines in order of preference.
var engines = []struct {
	bin       string
	imageArgs []string
}{
	{"docker", []string{"image", "inspect"}},
	{"podman", []string{"image", "exists"}},
}

func newEngine(bin string, imageArgs []string, x executor) *engine {
	return &engine{bin: bin, imageArgs: imageArgs, exec: x}
}

func (e *engine) Name() string { return e.bin }

func (e *engine) Available() bool {
	if _, err := e.exec.LookPath(e.bin); err != nil {
		return false
	}
	return e.exec.RunSilent(e.bin, "info") == nil
}

func (e *engine) ImageExists(image string) error {
	args := append(append([]string{}, e.imageArgs...), image)
	if err := e.exec.RunSilent(e.bin, args...); err != nil {
		return fmt.Errorf("image %s not found in %s: %w", image, e.bin, err)
	}
	return nil
}

func (e *engine) Run(image string, args []string, stdin io.Reader, stdout io.Writer) error {
	full := append([]string{"run", "--rm", "-i", image}, args...)
	if err := e.exec.RunPiped(e.bin, full, stdin, stdout); err != nil {
		return fmt.Errorf("running %s in %s: %w", image, e.bin, err)
	}
	return nil
}

// DetectRuntime returns the first available engine, docker before podman.
func DetectRuntime() (Runtime, error) {
	return detectRuntime(osExecutor{})
}

func detectRuntime(x executor) (Runtime, error) {
	for _, e := range engines {
		rt := newEngine(e.bin, e.imageArgs, x)
		if rt.Available() {
			return rt, nil
		}
	}
	return nil, fmt.Errorf("no container runtime available: neither docker nor podman found or operational")
}
