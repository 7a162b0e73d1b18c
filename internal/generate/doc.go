// Package generate runs a template synthesis as a sequence of phases.
//
// A run discovers the network, resolves the node groups, obtains a
// discovery token and the image catalog, synthesizes the document and
// renders it. Each phase reads earlier results from the shared State and
// stops the run on the first error, so no partial document is emitted.
package generate
