// Package iohelpers provides the small file-dump/load helpers
// cmd/simdemod and cmd/livedemod use to capture raw PCM and recovered
// symbol streams for offline inspection.
package iohelpers

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ReadBinary loads filename as a flat little-endian array of T.
func ReadBinary[T any](filename string) ([]T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %v", err)
	}

	numElements := int(fileInfo.Size()) / binary.Size(new(T))
	data := make([]T, numElements)

	if err := binary.Read(file, binary.LittleEndian, &data); err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}

	return data, nil
}

// WriteBinary dumps data to filename as a flat little-endian array.
func WriteBinary[T any](filename string, data []T) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	if err := binary.Write(file, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("failed to write file: %v", err)
	}

	return nil
}

// ReadTxt reads one whitespace-delimited value of T per line.
func ReadTxt[T any](filename string) ([]T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	var data []T
	for {
		var element T
		if _, err := fmt.Fscan(file, &element); err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read file: %v", err)
		}
		data = append(data, element)
	}

	return data, nil
}

// WriteTxt writes one formatted value per line, via f.
func WriteTxt[V, T any](filename string, data []T, f func(T) V) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	for _, element := range data {
		if _, err := fmt.Fprintln(file, f(element)); err != nil {
			return fmt.Errorf("failed to write file: %v", err)
		}
	}

	return nil
}
