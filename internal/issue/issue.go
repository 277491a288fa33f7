// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known failure class with a renderable issue card.
type Id int

const (
	UnknownTargetId Id = iota + 1
	EntryScriptNotFoundId
	SharedRootNotFoundId
	TargetRootNotFoundId
	ArtifactWriteFailedId
	SmokeTestFailedId
)

// MarkdownMsg is markdown text rendered to the terminal.
type MarkdownMsg string

// HttpLink is a documentation or external reference URL.
type HttpLink string

// Issue is one registered failure class.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	docLinks []HttpLink
	extLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue card with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	unknownTargetIssue = &Issue{
		id: UnknownTargetId,
		mdMsg: `
# Unknown target!

The target you asked to bundle is not in the configured target enumeration.

## Things you can try:
- List the configured targets:
~~~
$ nubundle targets
~~~

- Check for typos in the target name
- Add the target to your config file:
~~~cue
targets: ["python", "node", "jvm", "mytarget"]
~~~`,
	}

	entryScriptNotFoundIssue = &Issue{
		id: EntryScriptNotFoundId,
		mdMsg: `
# Entry script not found!

Every target needs an entry script at a fixed location; its body becomes the
tail of the generated artifact.

## Expected layout:
~~~
<scripts-dir>/<target>/setup.nu      entry script
<scripts-dir>/<target>/lib/          target module library
<scripts-dir>/<target>/templates/    optional template assets
~~~

## Things you can try:
- Run from the directory that contains the script tree
- Point the bundler at it explicitly:
~~~
$ nubundle bundle <target> --scripts-dir /path/to/scripts
~~~

- Inspect the expected paths per target:
~~~
$ nubundle targets
~~~`,
	}

	sharedRootNotFoundIssue = &Issue{
		id: SharedRootNotFoundId,
		mdMsg: `
# Shared module root not found!

Shared modules live in two locations under the shared root, probed before
any target library:

~~~
<scripts-dir>/shared/lib/    shared module library
<scripts-dir>/shared/        flat location for the top-level inlined module
~~~

## Things you can try:
- Create the directory, even if empty:
~~~
$ mkdir -p shared/lib
~~~

- Or change the shared root in your config file:
~~~cue
shared_dir: "common"
~~~`,
	}

	targetRootNotFoundIssue = &Issue{
		id: TargetRootNotFoundId,
		mdMsg: `
# Target directory not found!

The selected target has no directory under the scripts root.

## Things you can try:
- Check the configured scripts root:
~~~
$ nubundle config show
~~~

- Inspect what each target expects on disk:
~~~
$ nubundle targets
~~~`,
	}

	artifactWriteFailedIssue = &Issue{
		id: ArtifactWriteFailedId,
		mdMsg: `
# Could not write the artifact!

The bundle was assembled but writing it to the output directory failed.

## Common causes:
- No permission to create the output directory
- Output path occupied by a directory
- Disk full

## Things you can try:
- Point the bundler at a writable location:
~~~
$ nubundle bundle <target> --output-dir /tmp/dist
~~~`,
	}

	smokeTestFailedIssue = &Issue{
		id: SmokeTestFailedId,
		mdMsg: `
# Artifact smoke test failed!

The generated artifact was written but exited non-zero when invoked with
` + "`--help`" + `. The file is left on disk for inspection. This is usually a
module that only parses in its original on-disk layout.

## Common causes:
- An import that could not be located locally and was excluded from the
  bundle (the resolver warns about these; they surface only at run time)
- A template-loading helper whose shape the bundler no longer recognizes,
  leaving a disk read in bundled code
- The interpreter from the shebang line is not installed

## Things you can try:
- Re-run with warnings visible:
~~~
$ nubundle --verbose bundle <target>
~~~

- Run the artifact directly and read the interpreter's diagnostics`,
	}

	registry = map[Id]*Issue{
		UnknownTargetId:       unknownTargetIssue,
		EntryScriptNotFoundId: entryScriptNotFoundIssue,
		SharedRootNotFoundId:  sharedRootNotFoundIssue,
		TargetRootNotFoundId:  targetRootNotFoundIssue,
		ArtifactWriteFailedId: artifactWriteFailedIssue,
		SmokeTestFailedId:     smokeTestFailedIssue,
	}
)

// Get returns the registered issue for an id, or nil when unknown.
func Get(id Id) *Issue {
	return registry[id]
}

// Ids returns all registered issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(registry)
	slices.Sort(ids)
	return ids
}
