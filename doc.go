/*
Package uniname converts the official Unicode character-name registry into curated,
readable display names and publishes them as static per-block and per-codepoint lookup files.

The package provides a command line interface reading the semicolon-delimited registry
from a file or a pipe. To check the supported commands type:

	$ uniname --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/uniname"
	)

	func main() {
		f, _ := os.Open("UnicodeData.txt")
		defer f.Close()

		p := &uniname.Processor{}
		res, err := p.Process(f)
		if err != nil {
			fmt.Printf("Error processing the registry: %s", err.Error())
		}
		res.Table.WriteBlocks("names")
	}
*/
package uniname
