// SPDX-License-Identifier: MPL-2.0

// Package validate decides whether an invocation may run.
//
// Validation is an ordered list of stages over a shared Context. Each stage
// either passes, possibly refining the context (for example by retargeting
// the method through an interface), or fails with a typed error. The first
// failure ends validation; nothing is retried.
//
// ResolutionStages establish which executable and which contract apply.
// InvocationStages check the concrete call (arguments, flags, and standard
// streams) against that contract.
package validate
