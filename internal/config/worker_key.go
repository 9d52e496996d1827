package config

type WorkerKeyStruct struct {
	OperationLogQueue string
}

var WorkerKey = &WorkerKeyStruct{
	OperationLogQueue: "operation_log_queue",
}
