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

/*
Package clock reads and steers OS clocks, aimed at NTP and PTP daemons.

It wraps the kernel clock discipline API (adjtimex/clock_adjtime) behind a
small Clock interface so that a synchronization algorithm can apply frequency
trims, time steps, leap second warnings and error estimates without knowing
which syscall or which timex fields a given platform wants.

Supported operations include
  - reading the current time and resolution of a clock
  - getting and setting the clock frequency in PPM, with the kernel's own
    saturation semantics
  - composing a relative frequency adjustment on top of the current rate
  - stepping the clock forwards or backwards by an offset
  - setting the leap second indicator and the TAI-UTC offset
  - feeding estimated/maximum error statistics back to the kernel
  - disabling (or re-enabling) the kernel's own NTP discipline loops

Clocks are identified by an immutable clock ID: the system realtime clock,
the system TAI clock, or a dynamic clock ID derived from an open PTP device
file descriptor (see package phc). On Linux the full operation set is
available; on other Unix platforms only direct clock reads and steps are,
and everything else reports ErrNotSupported.

The kernel clock is process-global shared state. Read-modify-write
operations (leap bits, discipline loop control) are not atomic with respect
to concurrent steering by other processes.
*/
package clock
