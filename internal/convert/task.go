package convert

// Task - дескриптор одной конвертации. Его можно дождаться или
// проигнорировать; отменить запущенную конвертацию нельзя.
type Task struct {
	done chan struct{}
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

func (t *Task) finish(err error) {
	t.err = err
	close(t.done)
}

// Done закрывается по завершении конвертации.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait блокируется до завершения и возвращает ошибку конвертации.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}
