// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	MalformedMethodNameId Id = iota + 1
	ObjectNotFoundId
	ContractParseErrorId
	InterfaceLayoutId
	InterfaceMismatchId
	MethodNotExposedId
	FlagViolationId
	ArgumentCountId
	StreamViolationId
	NamespaceIOId
	ExecFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
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

func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	malformedMethodNameIssue = &Issue{
		id: MalformedMethodNameId,
		mdMsg: `
# Malformed method name!

A method name is an object path and a method joined by dots, with at
least one dot. Each segment may only contain letters, digits, "_" and "-".

## Examples:
~~~
io.write
net.http.get
__ro__.read
~~~

## Things you can try:
- List every method the namespace exposes:
~~~
$ irnix methods
~~~`,
	}

	objectNotFoundIssue = &Issue{
		id: ObjectNotFoundId,
		mdMsg: `
# Object not found!

The object part of the method name does not name a directory in the
namespace. ` + "`io.write`" + ` resolves to the directory ` + "`<namespace>/io`" + `.

## Things you can try:
- Check which namespace is in use:
~~~
$ irnix config show
~~~

- Point irnix at another namespace:
~~~
$ irnix --namespace /path/to/namespace exec io.write
$ export IRNIX_NAMESPACE=/path/to/namespace
~~~`,
	}

	contractParseErrorIssue = &Issue{
		id: ContractParseErrorId,
		mdMsg: `
# Invalid contract in a .self manifest!

Every non-empty line of a ` + "`.self`" + ` file declares one method contract.
Every argument and flag must say whether it is required (` + "`!`" + `) or
optional (` + "`?`" + `).

## Example manifest:
~~~
write: stdin! path! --mode=? -> [1, 2]
read: path! --follow? stdout!
~~~

## Things you can try:
- Fix the line reported above and retry
- Show the parsed contracts of an object:
~~~
$ irnix describe io.write
~~~`,
	}

	interfaceLayoutIssue = &Issue{
		id: InterfaceLayoutId,
		mdMsg: `
# Malformed interface!

An interface is a directory named ` + "`__name__`" + ` holding exactly two
entries: a ` + "`.self`" + ` manifest with the interface contracts and one
symbolic link to the object that implements them.

## Things you can try:
- Remove stray files from the interface directory
- Make sure the link points at an existing object directory:
~~~
$ ls -l <namespace>/__name__
~~~`,
	}

	interfaceMismatchIssue = &Issue{
		id: InterfaceMismatchId,
		mdMsg: `
# Target does not conform to the interface!

Every contract the interface declares must appear, identically, in the
target object's ` + "`.self`" + ` manifest.

## Things you can try:
- Compare both manifests:
~~~
$ irnix describe __name__.method
~~~

- Update the target's manifest, or point the interface at another object`,
	}

	methodNotExposedIssue = &Issue{
		id: MethodNotExposedId,
		mdMsg: `
# Method not exposed!

The object has a manifest, and only methods declared there may be called.
When called through an interface, the interface manifest decides.

## Things you can try:
- List the callable methods:
~~~
$ irnix methods
~~~

- Declare the method in the ` + "`.self`" + ` manifest`,
	}

	flagViolationIssue = &Issue{
		id: FlagViolationId,
		mdMsg: `
# Invalid flags!

The call passed a flag the contract does not declare, left out a required
flag, or omitted a value the flag demands (` + "`--name=!`" + `).

## Things you can try:
- Show the method contract:
~~~
$ irnix describe <object.method>
~~~`,
	}

	argumentCountIssue = &Issue{
		id: ArgumentCountId,
		mdMsg: `
# Wrong number of arguments!

Positional arguments must cover every required argument and must not
exceed required plus optional arguments.

## Things you can try:
- Show the method contract:
~~~
$ irnix describe <object.method>
~~~

- Separate flags meant for the method with ` + "`--`" + ` if irnix consumes them`,
	}

	streamViolationIssue = &Issue{
		id: StreamViolationId,
		mdMsg: `
# Standard stream mismatch!

The contract says whether the method reads stdin (` + "`stdin!`" + `, ` + "`stdin?`" + `)
and writes stdout. A required stdin must be piped, an undeclared stdin
must not be, and stdout must go to a terminal unless the method declares it.

## Things you can try:
~~~
$ producer | irnix exec io.write path
$ irnix exec io.read path | consumer
~~~`,
	}

	namespaceIOIssue = &Issue{
		id: NamespaceIOId,
		mdMsg: `
# Cannot read the namespace!

irnix failed to read a directory, manifest, or link inside the namespace.

## Things you can try:
- Check permissions on the namespace directory
- Look for dangling or looping symbolic links
- Run with ` + "`--verbose`" + ` to see which path failed`,
	}

	execFailedIssue = &Issue{
		id: ExecFailedId,
		mdMsg: `
# Failed to run the method!

The call was valid, but the operating system refused to execute the
method file.

## Common causes:
- The file is not executable (` + "`chmod +x`" + `)
- A script's interpreter line (` + "`#!`" + `) names a missing program

## Things you can try:
~~~
$ irnix exec --dry-run <object.method> [args...]
~~~`,
		extLinks: []HttpLink{"https://man7.org/linux/man-pages/man2/execve.2.html"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the irnix configuration file.

## Configuration file locations:
- Linux: ~/.config/irnix/config.cue
- macOS: ~/Library/Application Support/irnix/config.cue
- Windows: %APPDATA%\irnix\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ irnix config init
~~~

- Check the configuration syntax
- Check IRNIX_NAMESPACE and IRNIX_VERBOSE

## Example configuration:
~~~cue
namespace: "/home/user/.local/share/irnix"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		malformedMethodNameIssue.Id(): malformedMethodNameIssue,
		objectNotFoundIssue.Id():      objectNotFoundIssue,
		contractParseErrorIssue.Id():  contractParseErrorIssue,
		interfaceLayoutIssue.Id():     interfaceLayoutIssue,
		interfaceMismatchIssue.Id():   interfaceMismatchIssue,
		methodNotExposedIssue.Id():    methodNotExposedIssue,
		flagViolationIssue.Id():       flagViolationIssue,
		argumentCountIssue.Id():       argumentCountIssue,
		streamViolationIssue.Id():     streamViolationIssue,
		namespaceIOIssue.Id():         namespaceIOIssue,
		execFailedIssue.Id():          execFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
