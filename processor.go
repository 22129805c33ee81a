package uniname

import (
	"bufio"
	"io"
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/esimov/uniname/utils"
)

// maxWorkers caps the number of concurrently running decomposer workers.
const maxWorkers = 20

// Processor options
type Processor struct {
	Workers int
	Spinner *utils.Spinner
}

// Result holds everything one run produced: the populated name table and
// the run diagnostics.
type Result struct {
	Table         NameTable
	Mismatches    []Mismatch // bounded preview, first entries only
	MismatchCount int
	Lines         int
	Skipped       int
}

// entry is one decomposed record on its way into the name table.
type entry struct {
	key  string
	name string
}

// diagnostics carries the reader-side counters out of the producer
// goroutine once scanning finishes.
type diagnostics struct {
	mismatches    []Mismatch
	mismatchCount int
	lines         int
	skipped       int
	err           error
}

// Process reads the semicolon-delimited registry from src, filters each
// record, fans the accepted ones out to the decomposer workers and merges
// their output into a fresh NameTable. Decomposition is pure per record, so
// the worker count only affects throughput, never the produced table.
func (p *Processor) Process(src io.Reader) (*Result, error) {
	if p.Spinner != nil {
		p.Spinner.Start()
		defer p.Spinner.Stop()
	}

	workers := p.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	done := make(chan struct{})
	defer close(done)

	records, diagc := readRecords(done, src)

	entries := make(chan entry)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			decomposer(done, records, entries)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(entries)
		wg.Wait()
	}()

	table := NameTable{}
	for e := range entries {
		table[e.key] = e.name
	}

	diag := <-diagc
	if diag.err != nil {
		return nil, errors.Wrap(diag.err, "unable to read the registry")
	}

	return &Result{
		Table:         table,
		Mismatches:    diag.mismatches,
		MismatchCount: diag.mismatchCount,
		Lines:         diag.lines,
		Skipped:       diag.skipped,
	}, nil
}

// readRecords starts a goroutine that scans the registry line by line,
// applies the record filter and sends the accepted records on the returned
// channel. The reader-side diagnostics are sent as a single value once the
// scan completes. It terminates in case the done channel is closed.
func readRecords(done <-chan struct{}, src io.Reader) (<-chan Record, <-chan diagnostics) {
	recChan := make(chan Record)
	diagChan := make(chan diagnostics, 1)

	go func() {
		defer close(recChan)
		var diag diagnostics

		scanner := bufio.NewScanner(src)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			diag.lines++

			hexField, nameField, ok := splitLine(line)
			if !ok {
				diag.skipped++
				continue
			}
			rec, mm, ok := FilterRecord(hexField, nameField)
			if !ok {
				diag.skipped++
				if mm != nil {
					diag.mismatchCount++
					if len(diag.mismatches) < mismatchPreviewLimit {
						diag.mismatches = append(diag.mismatches, *mm)
					}
				}
				continue
			}

			select {
			case <-done:
				diag.err = errors.New("registry scan cancelled")
				diagChan <- diag
				return
			case recChan <- rec:
			}
		}
		diag.err = scanner.Err()
		diagChan <- diag
	}()
	return recChan, diagChan
}

// decomposer reads records from the records channel, runs the name
// decomposition over each one and sends the keyed display names on the
// entries channel.
func decomposer(done <-chan struct{}, records <-chan Record, entries chan<- entry) {
	for rec := range records {
		name := Decompose(rec.Name, rec.Hex)
		if name == "" {
			continue
		}
		select {
		case <-done:
			return
		case entries <- entry{key: rec.Hex, name: name}:
		}
	}
}
