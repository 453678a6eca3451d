// Package markup parses the tag-based rich-text markup used in
// human-written configuration files.
//
// # Syntax
//
// Markup is literal text interleaved with tags:
//
//	<gold>Welcome, <bold>traveller</bold>!</gold>
//
// Tags open with <name> or <name:arg:arg> and close with </name>. Closing
// an outer tag also closes every tag opened inside it. Arguments that
// contain ':' or '>' can be quoted with ' or ". A backslash escapes '<'
// and '\' in text, and the quote character inside a quoted argument.
//
// # Tags
//
//	<red> <dark_gray> ...     one of the sixteen named colors
//	<#ff8800>                 hex color
//	<color:red> <c:#ff8800>   color by argument (also <colour:...>)
//	<bold> <b>                decorations; also italic/i/em, underlined/u,
//	                          strikethrough/st, obfuscated/obf
//	<!bold> <bold:false>      switch a decoration off
//	<click:open_url:URL>      click action (run_command, suggest_command,
//	                          change_page, copy_to_clipboard)
//	<hover:show_text:'<red>tip'>  hover text, itself markup
//	<insert:text>             shift-click insertion
//	<font:namespace:key>      font
//	<newline> <br>            line break
//	<reset>                   close every open tag
//
// Unknown tags are kept as literal text unless the parser is strict.
// Known tags with bad arguments are always a [SyntaxError].
package markup
