// Package pipeline runs conversion jobs: one table file in, one FASTA file
// out. Jobs are fully synchronous and independent; the batch driver feeds
// them sequentially and never lets one file's failure stop the rest.
package pipeline
