package main

import (
	"fmt"
	"github.com/siongui/gokanjihanzi"
)

const mappingTable = "学\t學\t学\n医\t醫\t医\n漢\t漢\t汉\n"

const kanjiList = "学\n医\n漢\n"

func main() {
	table, _ := gokanjihanzi.Build(mappingTable, kanjiList)

	// Japanese Kanji to Traditional Chinese
	fmt.Println(table.ToTraditional("医学"))

	// Japanese Kanji to Simplified Chinese
	fmt.Println(table.ToSimplified("漢字"))

	// Chinese to Japanese Kanji
	fmt.Println(table.ToJapanese("醫學"))
}
