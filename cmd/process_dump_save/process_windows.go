package main

import (
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_windows"
)

func getProcess(pid process.ProcessID) (process.Process, error) {
	return process_windows.NewWithPID(pid)
}
