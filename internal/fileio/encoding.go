// Package fileio 提供文件层支撑：多编码解码、原子写入与时间戳备份。
package fileio

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUndecodable 所有候选编码都无法解码该文件。
var ErrUndecodable = errors.New("could not decode file with supported encodings")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Codec 一个候选编码：名称 + 解码/编码函数对。
// 解码成功的 Codec 会被记录下来，写回时用同一编码。
type Codec struct {
	Name   string
	decode func([]byte) (string, error)
	encode func(string) ([]byte, error)
}

// Encode 用该编码把内容转回字节。
func (c Codec) Encode(content string) ([]byte, error) {
	return c.encode(content)
}

// codecs 候选编码链，按优先级排列：严格 UTF-8 优先，
// 带 BOM 识别的变体其次，宽容的单字节编码兜底。
// 顺序决定哪些文件被接受、哪些被报告为不可解码，不可调整。
var codecs = []Codec{
	{
		Name: "utf-8",
		decode: func(data []byte) (string, error) {
			if !utf8.Valid(data) {
				return "", ErrUndecodable
			}
			return string(data), nil
		},
		encode: func(content string) ([]byte, error) {
			return []byte(content), nil
		},
	},
	{
		Name: "utf-8-sig",
		decode: func(data []byte) (string, error) {
			if !utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
				return "", ErrUndecodable
			}
			return unicode.UTF8BOM.NewDecoder().String(string(data))
		},
		encode: func(content string) ([]byte, error) {
			out, err := unicode.UTF8BOM.NewEncoder().String(content)
			if err != nil {
				return nil, err
			}
			return []byte(out), nil
		},
	},
	{
		Name: "latin-1",
		decode: func(data []byte) (string, error) {
			return charmap.ISO8859_1.NewDecoder().String(string(data))
		},
		encode: func(content string) ([]byte, error) {
			out, err := charmap.ISO8859_1.NewEncoder().String(content)
			if err != nil {
				return nil, err
			}
			return []byte(out), nil
		},
	},
}

// Decode 按优先级尝试候选编码，返回首个成功的内容与对应 Codec。
// latin-1 对任意字节都成功，因此实际到不了 ErrUndecodable，
// 但链条保持完整以便调整候选集时行为仍然正确。
func Decode(data []byte) (string, Codec, error) {
	for _, c := range codecs {
		content, err := c.decode(data)
		if err == nil {
			return content, c, nil
		}
	}
	return "", Codec{}, ErrUndecodable
}
