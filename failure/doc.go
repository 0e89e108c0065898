/*
Package failure defines the [Failure] produced by a failed assertion, and the strategies that decide what happens to it.

A [Strategy] is chosen when an assertion chain starts, and every failure in that chain is handed to it.
  - [Fatal] stops the test with t.Fatal.
  - [Panic] raises the failure with panic.
  - [Recorder] keeps going, and summarizes every failure at the end.
  - [Capture] holds exactly one failure so that tests can inspect it.
  - [Ignore] discards failures.

Failures are errors, and match [ErrAssertionFailed] with [errors.Is].
*/
package failure
