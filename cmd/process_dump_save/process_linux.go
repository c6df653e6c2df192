package main

import (
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_linux"
)

func getProcess(pid process.ProcessID) (process.Process, error) {
	return process_linux.NewWithPID(pid)
}
