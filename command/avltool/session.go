// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/render"
	"github.com/bitmark-inc/avltree/util"
)

// a set of named trees and the destinations for script output
type session struct {
	log             *logger.L
	trees           map[string]*avl.Tree
	out             io.Writer
	errors          io.Writer
	outputDirectory string
}

// argument limits for each command, -1 means no upper limit
type commandArguments struct {
	min int
	max int
}

var commands = map[string]commandArguments{
	"build":      {1, -1},
	"insert":     {2, -1},
	"delete":     {2, -1},
	"search":     {2, 2},
	"split":      {4, 4},
	"merge":      {3, 3},
	"inorder":    {1, 1},
	"levelorder": {1, 1},
	"count":      {1, 1},
	"height":     {1, 1},
	"check":      {1, 1},
	"print":      {1, 1},
	"dot":        {2, 2},
	"drop":       {1, 1},
}

// create a session with trees built from the configured values
func newSession(log *logger.L, trees map[string][]int, out io.Writer, errors io.Writer, outputDirectory string) *session {
	s := &session{
		log:             log,
		trees:           make(map[string]*avl.Tree),
		out:             out,
		errors:          errors,
		outputDirectory: outputDirectory,
	}
	for name, values := range trees {
		s.trees[name] = avl.Build(values)
		log.Debugf("tree: %q  preloaded: %d values", name, s.trees[name].Count())
	}
	return s
}

// run a script file
func (s *session) runFile(fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	s.log.Infof("run script: %q", fileName)
	return s.run(f)
}

// execute every line, a failing line is reported and the run
// continues with the next line
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	failed := 0
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		words := strings.Fields(line)
		if 0 == len(words) {
			continue
		}
		if err := s.execute(words[0], words[1:]); nil != err {
			failed += 1
			s.log.Errorf("line: %d  command: %q  error: %s", lineNumber, words[0], err)
			fmt.Fprintf(s.errors, "line %d: %s: %s\n", lineNumber, words[0], err)
		}
	}
	if err := scanner.Err(); nil != err {
		return err
	}
	if failed > 0 {
		s.log.Warnf("script failures: %d", failed)
		return fault.ErrScriptFailed
	}
	return nil
}

// execute a single command
func (s *session) execute(command string, arguments []string) error {

	limits, ok := commands[command]
	if !ok {
		return fault.ErrUnknownCommand
	}
	n := len(arguments)
	if n < limits.min || (limits.max >= 0 && n > limits.max) {
		return fault.ErrWrongArgumentCount
	}

	s.log.Debugf("execute: %s %v", command, arguments)

	name := arguments[0]

	switch command {
	case "build":
		values, err := parseValues(arguments[1:])
		if nil != err {
			return err
		}
		s.trees[name] = avl.Build(values)

	case "insert":
		values, err := parseValues(arguments[1:])
		if nil != err {
			return err
		}
		tree := s.tree(name)
		var firstError error
		for _, v := range values {
			_, err := tree.Insert(v)
			if nil != err && nil == firstError {
				firstError = err
			}
		}
		return firstError

	case "delete":
		values, err := parseValues(arguments[1:])
		if nil != err {
			return err
		}
		tree := s.tree(name)
		for _, v := range values {
			tree.Delete(v)
		}

	case "search":
		values, err := parseValues(arguments[1:])
		if nil != err {
			return err
		}
		fmt.Fprintf(s.out, "%s: %t\n", name, s.tree(name).Search(values[0]))

	case "split":
		values, err := parseValues(arguments[1:2])
		if nil != err {
			return err
		}
		low, high := s.tree(name).Split(values[0])
		s.trees[arguments[2]] = low
		s.trees[arguments[3]] = high

	case "merge":
		s.trees[arguments[2]] = avl.Merge(s.tree(name), s.tree(arguments[1]))

	case "inorder":
		fmt.Fprintf(s.out, "%s: %v\n", name, s.tree(name).Inorder())

	case "levelorder":
		fmt.Fprintf(s.out, "%s: %v\n", name, s.tree(name).LevelOrder())

	case "count":
		fmt.Fprintf(s.out, "%s: %d\n", name, s.tree(name).Count())

	case "height":
		fmt.Fprintf(s.out, "%s: %d\n", name, s.tree(name).Height())

	case "check":
		tree := s.tree(name)
		fmt.Fprintf(s.out, "%s: balanced: %t  valid: %t\n", name, tree.IsBalanced(), tree.IsValid())

	case "print":
		fmt.Fprintf(s.out, "%s:\n", name)
		s.tree(name).Print(s.out)

	case "dot":
		return s.writeDOT(name, arguments[1])

	case "drop":
		if _, ok := s.trees[name]; !ok {
			return fault.ErrTreeNotFound
		}
		delete(s.trees, name)
	}

	return nil
}

// fetch a tree by name, creating an empty one if necessary
func (s *session) tree(name string) *avl.Tree {
	tree, ok := s.trees[name]
	if !ok {
		tree = avl.New()
		s.trees[name] = tree
	}
	return tree
}

// write a Graphviz file into the output directory
func (s *session) writeDOT(name string, fileName string) error {
	if err := util.EnsurePlainName(fileName); nil != err {
		return err
	}
	path := util.EnsureAbsolute(s.outputDirectory, fileName)

	f, err := os.Create(path)
	if nil != err {
		return err
	}
	defer f.Close()

	err = render.WriteDOT(s.tree(name), name, f)
	if nil != err {
		return err
	}
	s.log.Infof("tree: %q  written to: %q", name, path)
	return nil
}

func parseValues(arguments []string) ([]int, error) {
	values := make([]int, 0, len(arguments))
	for _, a := range arguments {
		v, err := strconv.Atoi(a)
		if nil != err {
			return nil, fault.ErrInvalidNumber
		}
		values = append(values, v)
	}
	return values, nil
}
