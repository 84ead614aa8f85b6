// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dataset

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/poiesic/paperset/core"
)

// vectorMUS serializes embedding vectors as raw IEEE-754 float32 values,
// preserving full precision.
var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

// EntryMUS serializes one dataset entry: source label, text, vector.
var EntryMUS = entryMUS{}

type entryMUS struct{}

func (entryMUS) Marshal(e core.Entry, bs []byte) (n int) {
	n = ord.String.Marshal(e.Source, bs)
	n += ord.String.Marshal(e.Text, bs[n:])
	n += vectorMUS.Marshal(e.Vector, bs[n:])
	return
}

func (entryMUS) Unmarshal(bs []byte) (e core.Entry, n int, err error) {
	var n1 int
	e.Source, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (entryMUS) Size(e core.Entry) (size int) {
	size = ord.String.Size(e.Source)
	size += ord.String.Size(e.Text)
	size += vectorMUS.Size(e.Vector)
	return
}

func (entryMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}

// DatasetMUS serializes the ordered entry sequence.
var DatasetMUS = ord.NewSliceSer[core.Entry](EntryMUS)

// MarshalDataset serializes a Dataset to bytes.
func MarshalDataset(ds core.Dataset) []byte {
	buf := make([]byte, DatasetMUS.Size(ds))
	DatasetMUS.Marshal(ds, buf)
	return buf
}

// UnmarshalDataset deserializes a Dataset from bytes.
func UnmarshalDataset(data []byte) (core.Dataset, error) {
	ds, _, err := DatasetMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return core.Dataset(ds), nil
}
