// Package s3 uploads rendered templates to Amazon S3.
//
// CloudFormation only accepts large templates by URL, so generated
// documents can be stored under an s3://bucket/prefix location and
// referenced by their virtual-hosted https URL. Credentials come from the
// shared AWS configuration, optionally narrowed to a named profile.
package s3
