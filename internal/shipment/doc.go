// SPDX-License-Identifier: MPL-2.0

// Package shipment holds the Package Express domain model: the shipment
// record with its closed set of pipeline states, plus the pure rules that gate
// every state transition.
//
// Nothing in this package performs I/O. The interactive estimator and the
// quote command both drive a Record through Next.
package shipment
