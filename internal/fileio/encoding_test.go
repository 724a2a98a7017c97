package fileio

import (
	"bytes"
	"testing"
)

// TestDecode_UTF8 合法 UTF-8 由第一个候选编码接受
func TestDecode_UTF8(t *testing.T) {
	data := []byte("# 标题\nbody\n")
	content, codec, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if codec.Name != "utf-8" {
		t.Errorf("codec = %q, want utf-8", codec.Name)
	}
	if content != string(data) {
		t.Errorf("content = %q, want %q", content, string(data))
	}
}

// TestDecode_UTF8BOM 带 BOM 的文件仍是合法 UTF-8，BOM 保留为 U+FEFF
func TestDecode_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("# hi\n")...)
	content, codec, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if codec.Name != "utf-8" {
		t.Errorf("codec = %q, want utf-8", codec.Name)
	}
	if content != "\ufeff# hi\n" {
		t.Errorf("content = %q, BOM rune should survive", content)
	}
	// 写回时字节不变
	out, err := codec.Encode(content)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("Encode() = %v, want %v", out, data)
	}
}

// TestDecode_Latin1Fallback 非法 UTF-8 落到 latin-1，逐字节映射
func TestDecode_Latin1Fallback(t *testing.T) {
	data := []byte{'#', ' ', 0xE9, '\n'} // é in latin-1, invalid as UTF-8
	content, codec, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if codec.Name != "latin-1" {
		t.Errorf("codec = %q, want latin-1", codec.Name)
	}
	if content != "# é\n" {
		t.Errorf("content = %q, want %q", content, "# é\n")
	}
	out, err := codec.Encode(content)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("Encode() = %v, want %v", out, data)
	}
}

// TestEncode_Latin1Rejects latin-1 写回时超出字符集的字符报错
func TestEncode_Latin1Rejects(t *testing.T) {
	_, codec, err := Decode([]byte{0xFF})
	if err != nil {
		t.Fatal(err)
	}
	if codec.Name != "latin-1" {
		t.Fatalf("codec = %q, want latin-1", codec.Name)
	}
	if _, err := codec.Encode("日本語"); err == nil {
		t.Error("Encode() should fail for characters outside latin-1")
	}
}

// TestDecode_Empty 空文件按 utf-8 接受
func TestDecode_Empty(t *testing.T) {
	content, codec, err := Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if codec.Name != "utf-8" || content != "" {
		t.Errorf("Decode(nil) = (%q, %q), want (\"\", utf-8)", content, codec.Name)
	}
}
