/*
Package schedule turns cron expressions into lazy sequences of activation
times.

Nothing is computed until the cursor is advanced, and each advance asks the
underlying cron.Schedule for exactly one more time. The sequences compose with
every adaptor in the lazy package:

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	weekdays := schedule.Times("0 9 * * MON-FRI", from)
	firstFive, _ := lazy.Collect[time.Time](lazy.Take[time.Time](weekdays, 5))

Expressions use the standard five fields, an optional leading seconds field,
descriptors such as @daily, and an optional CRON_TZ= prefix. An invalid
expression does not fail at construction; the first Next returns the parse
error wrapped in an OperationError.
*/
package schedule
