// Package engine coordinates the docstring insertion pipeline.
//
// The single-file pipeline (DocumentSource) is pure text transformation:
//
//	Extract -> Plan -> Generate -> Splice
//
// Declarations that already carry a docstring are filtered before
// planning, which makes the pipeline idempotent. Plans whose header is not
// a safe insertion point are dropped by the splicer. Generation failures
// degrade to the deterministic template inside the generator.
//
// ProcessTree applies the pipeline to every Python file under a root with
// a bounded worker pool (errgroup + semaphore). Files share no mutable
// state; the only synchronized structure is the result map. A file that
// fails - parse error, read error, write error - becomes an error entry in
// the BatchResult and never affects its siblings. Output files are written
// whole after the pipeline succeeds, so an aborted run cannot leave a
// half-spliced file on disk.
package engine
