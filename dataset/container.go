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
	"bytes"
	"fmt"
	"os"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/paperset/core"
)

const (
	// containerVersion is the current container format version.
	containerVersion = 1

	digestSize = 32
	headerSize = 4 + 1 + digestSize
)

// containerMagic identifies a dataset container file.
var containerMagic = [4]byte{'P', 'S', 'E', 'T'}

// payloadDigest computes the BLAKE2b-256 digest of the serialized payload.
func payloadDigest(payload []byte) []byte {
	h, _ := blake2b.New(digestSize, nil)
	h.Write(payload)
	return h.Sum(nil)
}

// WriteFile serializes the dataset and writes the container to path,
// overwriting any existing file. A crash mid-write leaves the file invalid;
// the digest in the header lets ReadFile detect that, so consumers treat a
// failed write as "no dataset produced".
func WriteFile(path string, ds core.Dataset) error {
	payload := MarshalDataset(ds)

	buf := make([]byte, 0, headerSize+len(payload))
	buf = append(buf, containerMagic[:]...)
	buf = append(buf, containerVersion)
	buf = append(buf, payloadDigest(payload)...)
	buf = append(buf, payload...)

	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("writing container %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a dataset container, validating magic, version and payload
// digest before deserializing. Content and order round-trip exactly.
func ReadFile(path string) (core.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading container %s: %w", path, err)
	}

	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedContainer, len(data))
	}

	if !bytes.Equal(data[:4], containerMagic[:]) {
		return nil, ErrBadMagic
	}

	if version := data[4]; version != containerVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	digest := data[5:headerSize]
	payload := data[headerSize:]
	if !bytes.Equal(digest, payloadDigest(payload)) {
		return nil, ErrChecksumMismatch
	}

	return UnmarshalDataset(payload)
}
