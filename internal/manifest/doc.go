// Package manifest handles the tsmm.json manifest and package descriptors.
// The manifest records the managed source directory and the installed modules;
// descriptors (package.json) name a cloned module or the host project. Both
// documents are checked against embedded JSON Schemas before use.
package manifest
