// SPDX-License-Identifier: MPL-2.0

// Package estimator runs the interactive Package Express estimate.
//
// A Session owns one shipment.Record and drives it through the pipeline
// weight -> dimensions -> calculation. Each loop iteration dispatches on the
// record's state, runs that stage's prompts, and either advances the record or
// leaves it where it was so the same stage runs again on the next iteration.
//
// Invalid numbers are always answered by asking again. Business-rule
// rejections (too heavy, too big) are asked again under RejectRetry and end
// the session with a *RejectedError under RejectAbort. Everything else (closed
// input, read failures, cancellation) is returned to the caller unchanged.
package estimator
