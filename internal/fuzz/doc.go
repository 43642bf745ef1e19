// Package fuzztests houses Go fuzz harnesses for the front end of the
// bundler (source -> lexer -> parser -> interface rewrite). They guard
// against panics and hangs on arbitrary input.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер, парсер
// и преобразование интерфейса модуля.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
