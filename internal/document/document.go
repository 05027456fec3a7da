// Package document builds the problem wrappers a TI-Nspire archive entry
// carries: tokenized XML prologue and epilogue bytes concatenated around
// the script content. The resulting buffers are opaque to the rest of the
// pipeline, which only compresses and protects them.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/calclabs/tnspack/internal/mathtext"
)

// MaxCompanionNameLen is the longest companion script filename the Python
// wrapper accepts.
const MaxCompanionNameLen = 240

// ErrInvalidInput is returned for input the wrapper cannot represent,
// such as an over-long companion filename.
var ErrInvalidInput = errors.New("invalid input")

// cdataRestart splits a CDATA section so an embedded "]]>" cannot
// terminate it early.
const cdataRestart = "]]><![CDATA["

// WrapLua embeds a Lua script into the problem wrapper. Occurrences of
// "]]>" in the script are split across two CDATA sections first.
func WrapLua(script string) []byte {
	fixed := fixCDATAEndSeq(script)

	result := make([]byte, 0, len(luaWrapperHead)+len(fixed)+len(luaWrapperTail))
	result = append(result, luaWrapperHead...)
	result = append(result, fixed...)
	result = append(result, luaWrapperTail...)
	return result
}

// WrapPython builds the problem wrapper referencing a companion Python
// script by filename. The script content itself lives in a separate
// archive entry.
func WrapPython(filename string) ([]byte, error) {
	if len(filename) > MaxCompanionNameLen {
		return nil, fmt.Errorf("%w: python script filenames limited to %d characters", ErrInvalidInput, MaxCompanionNameLen)
	}

	result := make([]byte, 0, len(pyWrapperHead)+len(filename)+len(pyWrapperTail))
	result = append(result, pyWrapperHead...)
	result = append(result, filename...)
	result = append(result, pyWrapperTail...)
	return result, nil
}

// fixCDATAEndSeq rewrites every "]]>" in the script as
// "]]" + cdataRestart + ">", keeping the CDATA section open across the
// sequence.
func fixCDATAEndSeq(script string) string {
	return strings.ReplaceAll(script, "]]>", "]]"+cdataRestart+">")
}

// TextToLuaScript renders plain text as a Lua script that displays it.
// The calculator has no native plain-text note format, so the note
// becomes a scrollable text viewer. LaTeX-style math notation is
// substituted with Unicode first.
func TextToLuaScript(text string) string {
	text = mathtext.Render(text)

	delim := safeDelimiter(text)

	var b strings.Builder
	b.Grow(len(text) + len(luaViewerBody) + 64)
	b.WriteString("-- Text Note (generated by tnspack)\nlocal text = [")
	b.WriteString(delim)
	b.WriteString("[")
	b.WriteString(text)
	b.WriteString("]")
	b.WriteString(delim)
	b.WriteString("]\n")
	b.WriteString(luaViewerBody)
	return b.String()
}

// safeDelimiter finds an equals-sign run such that the Lua long-string
// closer "]"+run+"]" does not occur in the text.
func safeDelimiter(text string) string {
	var equals strings.Builder
	for {
		if !strings.Contains(text, "]"+equals.String()+"]") {
			return equals.String()
		}
		equals.WriteByte('=')

		// ten levels is already absurd for prose
		if equals.Len() > 10 {
			return equals.String()
		}
	}
}

// luaViewerBody is the scrolling text viewer appended after the text
// literal. UP/DOWN scroll, ENTER resets.
const luaViewerBody = `
local FONT_SIZE = 11
local LINE_HEIGHT = 15
local MARGIN_X = 4
local MARGIN_TOP = 20
local scroll = 0
local max_scroll = 0
local wrapped_lines = {}

-- Wrap text to fit screen width
function wrap_text(gc, txt, max_width)
    wrapped_lines = {}
    for line in (txt .. "\n"):gmatch("([^\r\n]*)\r?\n") do
        if line == "" then
            table.insert(wrapped_lines, "")
        else
            local current = ""
            for word in line:gmatch("%S+") do
                local test = current == "" and word or (current .. " " .. word)
                if gc:getStringWidth(test) > max_width then
                    if current ~= "" then
                        table.insert(wrapped_lines, current)
                    end
                    -- Handle very long words
                    if gc:getStringWidth(word) > max_width then
                        local chars = ""
                        for c in word:gmatch(".") do
                            if gc:getStringWidth(chars .. c) > max_width then
                                table.insert(wrapped_lines, chars)
                                chars = c
                            else
                                chars = chars .. c
                            end
                        end
                        current = chars
                    else
                        current = word
                    end
                else
                    current = test
                end
            end
            if current ~= "" then
                table.insert(wrapped_lines, current)
            end
        end
    end
end

function on.paint(gc)
    gc:setFont("sansserif", "r", FONT_SIZE)
    local w, h = platform.window:width(), platform.window:height()

    if #wrapped_lines == 0 then
        wrap_text(gc, text, w - MARGIN_X * 2)
    end

    local y = MARGIN_TOP - scroll
    for _, line in ipairs(wrapped_lines) do
        if y + LINE_HEIGHT > 0 and y < h then
            gc:drawString(line, MARGIN_X, y)
        end
        y = y + LINE_HEIGHT
    end

    max_scroll = math.max(0, #wrapped_lines * LINE_HEIGHT - h + MARGIN_TOP + 10)
end

function on.arrowKey(key)
    if key == "up" then
        scroll = math.max(0, scroll - LINE_HEIGHT)
    elseif key == "down" then
        scroll = math.min(max_scroll, scroll + LINE_HEIGHT)
    end
    platform.window:invalidate()
end

function on.enterKey()
    scroll = 0
    platform.window:invalidate()
end

function on.resize()
    wrapped_lines = {}
    platform.window:invalidate()
end

platform.window:invalidate()
`

// EscapeUnicode converts a UTF-8 string to the calculator's variable
// width character encoding. A leading UTF-8 BOM is dropped.
func EscapeUnicode(input string) []byte {
	input = strings.TrimPrefix(input, "\uFEFF")

	result := make([]byte, 0, len(input))
	for _, r := range input {
		c := uint32(r)
		switch {
		case c < 0x80:
			result = append(result, byte(c))
		case c < 0x800:
			result = append(result, byte(c>>8), byte(c))
		case c < 0x10000:
			result = append(result, 0x80, byte(c>>8), byte(c))
		default:
			result = append(result, 0x08, byte(c>>16), byte(c>>8), byte(c))
		}
	}
	return result
}
