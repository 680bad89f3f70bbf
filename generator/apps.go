package generator

import (
	"fmt"

	"github.com/google/uuid"
)

// App is a generated application scaffold: frontend source, optional
// backend source, and a human-readable explanation of what the app does.
type App struct {
	AppID        string   `json:"app_id"`
	FrontendCode string   `json:"frontend_code"`
	BackendCode  string   `json:"backend_code,omitempty"`
	Diagrams     []string `json:"diagrams"`
	Explanation  string   `json:"explanation"`
}

// AppTypes lists the supported application scaffold types.
var AppTypes = []string{"playground", "tutorial", "demo"}

// GenerateApp builds the scaffold for the requested app type. Unknown
// types fail with an error naming the offending value.
func GenerateApp(appType string) (*App, error) {
	switch appType {
	case "playground":
		return Playground(), nil
	case "tutorial":
		return Tutorial(), nil
	case "demo":
		return Demo(), nil
	default:
		return nil, fmt.Errorf("unknown app type: %q", appType)
	}
}

// Playground returns an interactive code editor scaffold with a run
// button wired to a backend execution endpoint.
func Playground() *App {
	return &App{
		AppID:        uuid.NewString(),
		FrontendCode: playgroundFrontend,
		BackendCode:  playgroundBackend,
		Diagrams:     []string{},
		Explanation:  "Interactive code playground with live execution. Users can write code, run it, and see output in real-time.",
	}
}

// Tutorial returns a step-by-step guided learning scaffold with progress
// tracking.
func Tutorial() *App {
	return &App{
		AppID:        uuid.NewString(),
		FrontendCode: tutorialFrontend,
		Diagrams:     []string{},
		Explanation:  "Step-by-step tutorial with progress tracking and interactive examples.",
	}
}

// Demo returns a minimal working demonstration scaffold.
func Demo() *App {
	return &App{
		AppID:        uuid.NewString(),
		FrontendCode: "// Demo app code",
		BackendCode:  "# Demo API code",
		Diagrams:     []string{},
		Explanation:  "Working demonstration of the concepts",
	}
}

const playgroundFrontend = `import React, { useState } from 'react';
import Editor from '@monaco-editor/react';
import { Play, RotateCcw, BookOpen } from 'lucide-react';

const initialCode = ` + "`" + `def example():
    print("Hello from the playground!")
    return True

example()` + "`" + `;

export default function CodePlayground() {
  const [code, setCode] = useState(initialCode);
  const [output, setOutput] = useState('');
  const [isRunning, setIsRunning] = useState(false);

  const runCode = async () => {
    setIsRunning(true);
    try {
      const response = await fetch('/api/execute', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ code, language: 'python' })
      });
      const result = await response.json();
      setOutput(result.output);
    } catch (error) {
      setOutput('Error: ' + error.message);
    }
    setIsRunning(false);
  };

  return (
    <div className="h-screen flex flex-col bg-gray-900">
      <div className="bg-gray-800 border-b border-gray-700 p-4 flex items-center justify-between">
        <div className="flex items-center gap-3">
          <BookOpen className="w-6 h-6 text-blue-400" />
          <h1 className="text-xl font-bold text-white">Interactive Code Playground</h1>
        </div>
        <div className="flex gap-2">
          <button onClick={() => { setCode(initialCode); setOutput(''); }}
            className="px-4 py-2 bg-gray-700 text-white rounded-lg flex items-center gap-2">
            <RotateCcw className="w-4 h-4" /> Reset
          </button>
          <button onClick={runCode} disabled={isRunning}
            className="px-4 py-2 bg-blue-600 text-white rounded-lg flex items-center gap-2 disabled:opacity-50">
            <Play className="w-4 h-4" /> {isRunning ? 'Running...' : 'Run Code'}
          </button>
        </div>
      </div>
      <div className="flex-1 flex">
        <div className="flex-1 border-r border-gray-700">
          <Editor height="100%" defaultLanguage="python" theme="vs-dark"
            value={code} onChange={(value) => setCode(value || '')} />
        </div>
        <div className="w-1/3 bg-gray-800 flex flex-col">
          <div className="p-3 border-b border-gray-700">
            <h2 className="text-sm font-semibold text-gray-300">Output</h2>
          </div>
          <pre className="flex-1 p-4 text-sm text-gray-100 font-mono whitespace-pre-wrap overflow-auto">
            {output || 'Run code to see output...'}
          </pre>
        </div>
      </div>
    </div>
  );
}
`

const playgroundBackend = `from fastapi import FastAPI, HTTPException
from pydantic import BaseModel
from io import StringIO
import contextlib

app = FastAPI()

class CodeExecutionRequest(BaseModel):
    code: str
    language: str

@app.post("/api/execute")
async def execute_code(request: CodeExecutionRequest):
    if request.language != "python":
        raise HTTPException(status_code=400, detail="Only Python supported")

    output_buffer = StringIO()
    try:
        with contextlib.redirect_stdout(output_buffer):
            exec(request.code, {"__builtins__": __builtins__})
        return {"output": output_buffer.getvalue(), "error": None}
    except Exception as e:
        return {"output": "", "error": str(e)}
`

const tutorialFrontend = `import React, { useState } from 'react';
import { ChevronLeft, ChevronRight, CheckCircle } from 'lucide-react';

const tutorialSteps = [
  {
    title: "Introduction",
    content: "Welcome to this interactive tutorial!",
    code: "# Step 1: Getting started\nprint('Hello, World!')"
  },
];

export default function TutorialApp() {
  const [currentStep, setCurrentStep] = useState(0);
  const [completed, setCompleted] = useState(new Set());
  const step = tutorialSteps[currentStep];

  return (
    <div className="min-h-screen bg-gradient-to-br from-blue-50 to-indigo-100">
      <div className="max-w-4xl mx-auto p-6">
        <div className="mb-8">
          <div className="flex justify-between mb-2">
            <span className="text-sm font-medium">Progress</span>
            <span className="text-sm text-gray-600">{currentStep + 1} / {tutorialSteps.length}</span>
          </div>
          <div className="h-2 bg-gray-200 rounded-full">
            <div className="h-2 bg-blue-600 rounded-full transition-all"
              style={{ width: ((currentStep + 1) / tutorialSteps.length) * 100 + '%' }} />
          </div>
        </div>
        <div className="bg-white rounded-xl shadow-lg p-8">
          <h1 className="text-3xl font-bold mb-4">{step.title}</h1>
          <p className="mb-6">{step.content}</p>
          {step.code && (
            <pre className="bg-gray-900 text-gray-100 text-sm rounded-lg p-4 mb-6 overflow-x-auto">{step.code}</pre>
          )}
          <div className="flex justify-between items-center mt-8">
            <button onClick={() => setCurrentStep(Math.max(0, currentStep - 1))}
              disabled={currentStep === 0}
              className="px-4 py-2 flex items-center gap-2 border rounded-lg disabled:opacity-50">
              <ChevronLeft className="w-4 h-4" /> Previous
            </button>
            <button onClick={() => setCompleted(new Set([...completed, currentStep]))}
              className="px-6 py-2 bg-green-600 text-white rounded-lg flex items-center gap-2">
              <CheckCircle className="w-4 h-4" /> Complete Step
            </button>
            <button onClick={() => setCurrentStep(Math.min(tutorialSteps.length - 1, currentStep + 1))}
              disabled={currentStep === tutorialSteps.length - 1}
              className="px-4 py-2 flex items-center gap-2 bg-blue-600 text-white rounded-lg disabled:opacity-50">
              Next <ChevronRight className="w-4 h-4" />
            </button>
          </div>
        </div>
      </div>
    </div>
  );
}
`
