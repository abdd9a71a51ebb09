package initchecker

import "fmt"

// CheckInit проверяет пары (имя, зависимость), паникуя на старте,
// если какой-то обработчик собран раньше своих зависимостей
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: нечётное число аргументов")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: первым аргументом пары должна быть строка")
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("зависимость %s не инициализирована", name))
		}
	}
}
