/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package clock

// FDToClockID converts a file descriptor number to a clock ID following the
// kernel's dynamic clock (CLOCKFD) convention: ((~fd) << 3) | 3.
//
// The resulting clock ID borrows the descriptor: it is valid only while the
// descriptor stays open, and deriving it never takes ownership of the file.
func FDToClockID(fd uintptr) int32 {
	return int32((int(^fd) << 3) | 3)
}
